package editor

import (
	"fmt"

	"github.com/tidydrive/namerule/pkg/models"
	"github.com/tidydrive/namerule/pkg/schema"
)

// Target selects which of the two patterns an operation applies to
type Target string

const (
	TargetFile   Target = "file"
	TargetFolder Target = "folder"
)

// snapshot is an immutable copy of both patterns at one point in history
type snapshot struct {
	file   models.Pattern
	folder models.Pattern
}

// Editor owns the file and folder naming patterns for one editing session
// and provides linear undo/redo over them via full-state snapshots.
//
// All operations are synchronous and run on the calling goroutine. An
// Editor is not safe for concurrent use; each session (one open document)
// instantiates its own.
type Editor struct {
	file      models.Pattern
	folder    models.Pattern
	undoStack []snapshot
	redoStack []snapshot
	dirty     bool
	onChange  func(models.Schema)
}

// New creates an editor with two empty patterns and a clean history.
func New() *Editor {
	return &Editor{
		file:   models.Pattern{},
		folder: models.Pattern{},
	}
}

// OnChange registers the callback invoked with a schema snapshot after
// every successful mutation (including undo, redo, and load). Passing nil
// unregisters it.
func (e *Editor) OnChange(fn func(models.Schema)) {
	e.onChange = fn
}

// Dirty reports whether the current state differs from the last loaded or
// acknowledged-saved state.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkSaved acknowledges the current state as persisted.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool {
	return len(e.undoStack) > 0
}

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool {
	return len(e.redoStack) > 0
}

// Pattern returns a copy of the selected pattern.
func (e *Editor) Pattern(t Target) models.Pattern {
	return e.pattern(t).Clone()
}

// Schema returns the current state as a schema value. Metadata timestamps
// are the caller's responsibility to stamp on export.
func (e *Editor) Schema() models.Schema {
	return models.Schema{
		Version:       models.SchemaVersion,
		FilePattern:   e.file.Clone(),
		FolderPattern: e.folder.Clone(),
	}
}

// Add appends a segment to the selected pattern.
func (e *Editor) Add(t Target, seg models.Segment) {
	e.Insert(t, seg, len(*e.pattern(t)))
}

// Insert places a segment at the given position. The index is clamped
// into [0, len].
func (e *Editor) Insert(t Target, seg models.Segment, index int) {
	p := e.pattern(t)
	if index < 0 {
		index = 0
	}
	if index > len(*p) {
		index = len(*p)
	}
	e.mutate(func() {
		next := make(models.Pattern, 0, len(*p)+1)
		next = append(next, (*p)[:index]...)
		next = append(next, seg)
		next = append(next, (*p)[index:]...)
		*p = next
	})
}

// Remove deletes the segment with the given ID. Addressing an absent ID is
// a no-op: no history entry is pushed and no notification fires.
func (e *Editor) Remove(t Target, id string) bool {
	p := e.pattern(t)
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}
	e.mutate(func() {
		next := make(models.Pattern, 0, len(*p)-1)
		next = append(next, (*p)[:i]...)
		next = append(next, (*p)[i+1:]...)
		*p = next
	})
	return true
}

// Update replaces the text of a literal segment. Variable segments and
// unknown IDs are left untouched (no-op).
func (e *Editor) Update(t Target, id, newValue string) bool {
	p := e.pattern(t)
	i := p.IndexOf(id)
	if i < 0 || (*p)[i].Type != models.SegmentLiteral {
		return false
	}
	if (*p)[i].Value == newValue {
		return false
	}
	e.mutate(func() {
		next := p.Clone()
		next[i].Value = newValue
		*p = next
	})
	return true
}

// Reorder moves the segment at from to position to: the segment is removed
// and reinserted, shifting the elements between them. Equal or out-of-range
// indices are a no-op.
func (e *Editor) Reorder(t Target, from, to int) bool {
	p := e.pattern(t)
	n := len(*p)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	e.mutate(func() {
		next := p.Clone()
		seg := next[from]
		next = append(next[:from], next[from+1:]...)
		rest := make(models.Pattern, 0, n)
		rest = append(rest, next[:to]...)
		rest = append(rest, seg)
		rest = append(rest, next[to:]...)
		*p = rest
	})
	return true
}

// Clear empties the selected pattern. Clearing an already-empty pattern is
// a no-op.
func (e *Editor) Clear(t Target) bool {
	p := e.pattern(t)
	if len(*p) == 0 {
		return false
	}
	e.mutate(func() {
		*p = models.Pattern{}
	})
	return true
}

// Undo restores the most recent history entry, moving the current state to
// the redo stack. Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	if len(e.undoStack) == 0 {
		return false
	}
	last := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, e.snapshot())
	e.restore(last)
	return true
}

// Redo reapplies the most recently undone entry. Any mutation after an
// undo clears the redo stack, making this a no-op.
func (e *Editor) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}
	last := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, e.snapshot())
	e.restore(last)
	return true
}

// Load replaces the editor state wholesale with a validated schema. Both
// history stacks are cleared and the dirty flag reset. A structurally
// invalid schema is rejected without touching the current state.
func (e *Editor) Load(s models.Schema) error {
	if err := schema.ValidateSchema(&s); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	e.file = s.FilePattern.Clone()
	e.folder = s.FolderPattern.Clone()
	e.undoStack = nil
	e.redoStack = nil
	e.dirty = false
	e.notify()
	return nil
}

// pattern returns the mutable pattern for a target. Unknown targets map to
// the file pattern.
func (e *Editor) pattern(t Target) *models.Pattern {
	if t == TargetFolder {
		return &e.folder
	}
	return &e.file
}

// mutate pushes the current state onto the undo stack, applies the change,
// invalidates the redo stack, and notifies the listener.
func (e *Editor) mutate(apply func()) {
	e.undoStack = append(e.undoStack, e.snapshot())
	apply()
	e.redoStack = nil
	e.dirty = true
	e.notify()
}

func (e *Editor) snapshot() snapshot {
	return snapshot{
		file:   e.file.Clone(),
		folder: e.folder.Clone(),
	}
}

func (e *Editor) restore(s snapshot) {
	e.file = s.file.Clone()
	e.folder = s.folder.Clone()
	e.dirty = true
	e.notify()
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(e.Schema())
	}
}
