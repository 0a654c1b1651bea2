package editor

import (
	"reflect"
	"testing"

	"github.com/tidydrive/namerule/pkg/models"
)

func TestAddAppends(t *testing.T) {
	ed := New()
	a := models.NewVariable("project_name")
	b := models.NewLiteral("_")

	ed.Add(TargetFile, a)
	ed.Add(TargetFile, b)

	got := ed.Pattern(TargetFile)
	want := models.Pattern{a, b}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected pattern %+v, got %+v", want, got)
	}
	if !ed.Dirty() {
		t.Error("Expected editor to be dirty after mutations")
	}
}

func TestInsertAtIndex(t *testing.T) {
	ed := New()
	a := models.NewLiteral("a")
	b := models.NewLiteral("b")
	c := models.NewLiteral("c")
	ed.Add(TargetFile, a)
	ed.Add(TargetFile, b)
	ed.Add(TargetFile, c)

	x := models.NewVariable("YYYY")
	ed.Insert(TargetFile, x, 1)

	got := ed.Pattern(TargetFile)
	want := models.Pattern{a, x, b, c}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected pattern %+v, got %+v", want, got)
	}
}

func TestInsertClampsIndex(t *testing.T) {
	ed := New()
	a := models.NewLiteral("a")
	ed.Add(TargetFile, a)

	before := models.NewLiteral("before")
	after := models.NewLiteral("after")
	ed.Insert(TargetFile, before, -5)
	ed.Insert(TargetFile, after, 99)

	got := ed.Pattern(TargetFile)
	want := models.Pattern{before, a, after}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected pattern %+v, got %+v", want, got)
	}
}

func TestRemove(t *testing.T) {
	ed := New()
	a := models.NewLiteral("a")
	b := models.NewLiteral("b")
	ed.Add(TargetFile, a)
	ed.Add(TargetFile, b)

	if !ed.Remove(TargetFile, a.ID) {
		t.Fatal("Expected Remove to report success")
	}
	got := ed.Pattern(TargetFile)
	want := models.Pattern{b}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected pattern %+v, got %+v", want, got)
	}
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	ed := New()
	a := models.NewLiteral("a")
	ed.Add(TargetFile, a)

	before := ed.Pattern(TargetFile)
	if ed.Remove(TargetFile, "seg_missing") {
		t.Error("Expected Remove of unknown ID to report no-op")
	}
	if !reflect.DeepEqual(ed.Pattern(TargetFile), before) {
		t.Error("Expected pattern unchanged after no-op remove")
	}

	// History must be untouched: one undo should reach the empty state
	if !ed.Undo() {
		t.Fatal("Expected one undo step")
	}
	if len(ed.Pattern(TargetFile)) != 0 {
		t.Error("Expected empty pattern after single undo")
	}
	if ed.Undo() {
		t.Error("Expected no further undo steps")
	}
}

func TestUpdateLiteral(t *testing.T) {
	ed := New()
	lit := models.NewLiteral("draft")
	ed.Add(TargetFile, lit)

	if !ed.Update(TargetFile, lit.ID, "final") {
		t.Fatal("Expected Update to report success")
	}
	got := ed.Pattern(TargetFile)
	if got[0].Value != "final" {
		t.Errorf("Expected value 'final', got %s", got[0].Value)
	}
	if got[0].ID != lit.ID {
		t.Error("Expected segment ID to be stable across update")
	}
}

func TestUpdateVariableIsNoOp(t *testing.T) {
	ed := New()
	v := models.NewVariable("project_name")
	ed.Add(TargetFile, v)

	if ed.Update(TargetFile, v.ID, "other") {
		t.Error("Expected Update on a variable segment to be a no-op")
	}
	if ed.Pattern(TargetFile)[0].Value != "project_name" {
		t.Error("Expected variable segment unchanged")
	}
}

func TestReorder(t *testing.T) {
	ed := New()
	a := models.NewLiteral("A")
	b := models.NewLiteral("B")
	c := models.NewLiteral("C")
	ed.Add(TargetFile, a)
	ed.Add(TargetFile, b)
	ed.Add(TargetFile, c)

	// Element at from is removed and reinserted at to: [A,B,C] -> [B,C,A]
	if !ed.Reorder(TargetFile, 0, 2) {
		t.Fatal("Expected Reorder to report success")
	}
	got := ed.Pattern(TargetFile)
	want := models.Pattern{b, c, a}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected pattern %+v, got %+v", want, got)
	}
}

func TestReorderNoOps(t *testing.T) {
	ed := New()
	a := models.NewLiteral("A")
	b := models.NewLiteral("B")
	ed.Add(TargetFile, a)
	ed.Add(TargetFile, b)
	before := ed.Pattern(TargetFile)

	for _, tc := range []struct{ from, to int }{
		{0, 0},
		{-1, 1},
		{0, 2},
		{5, 0},
	} {
		if ed.Reorder(TargetFile, tc.from, tc.to) {
			t.Errorf("Expected Reorder(%d, %d) to be a no-op", tc.from, tc.to)
		}
	}
	if !reflect.DeepEqual(ed.Pattern(TargetFile), before) {
		t.Error("Expected pattern unchanged after no-op reorders")
	}
}

func TestTargetsAreIndependent(t *testing.T) {
	ed := New()
	f := models.NewVariable("project_name")
	d := models.NewVariable("client_name")
	ed.Add(TargetFile, f)
	ed.Add(TargetFolder, d)

	if len(ed.Pattern(TargetFile)) != 1 || ed.Pattern(TargetFile)[0].ID != f.ID {
		t.Error("Unexpected file pattern")
	}
	if len(ed.Pattern(TargetFolder)) != 1 || ed.Pattern(TargetFolder)[0].ID != d.ID {
		t.Error("Unexpected folder pattern")
	}

	ed.Clear(TargetFile)
	if len(ed.Pattern(TargetFolder)) != 1 {
		t.Error("Clearing the file pattern must not touch the folder pattern")
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	ed := New()
	a := models.NewVariable("project_name")
	b := models.NewLiteral("_")
	c := models.NewVariable("YYYY")

	var states []models.Pattern
	states = append(states, ed.Pattern(TargetFile))
	ed.Add(TargetFile, a)
	states = append(states, ed.Pattern(TargetFile))
	ed.Add(TargetFile, b)
	states = append(states, ed.Pattern(TargetFile))
	ed.Add(TargetFile, c)
	states = append(states, ed.Pattern(TargetFile))
	ed.Reorder(TargetFile, 0, 2)
	ed.Remove(TargetFile, b.ID)

	// Five mutations, five undos back to the initial empty state
	mutations := 5
	for i := 0; i < mutations; i++ {
		if !ed.Undo() {
			t.Fatalf("Expected undo step %d to succeed", i+1)
		}
	}
	if len(ed.Pattern(TargetFile)) != 0 {
		t.Errorf("Expected empty pattern after full undo, got %+v", ed.Pattern(TargetFile))
	}
	if ed.Undo() {
		t.Error("Expected undo on empty history to be a no-op")
	}

	// Walk forward again and compare segment-by-segment, IDs included
	for i := 1; i < len(states); i++ {
		if !ed.Redo() {
			t.Fatalf("Expected redo step %d to succeed", i)
		}
		if !reflect.DeepEqual(ed.Pattern(TargetFile), states[i]) {
			t.Errorf("Redo step %d: expected %+v, got %+v", i, states[i], ed.Pattern(TargetFile))
		}
	}
}

func TestMutationInvalidatesRedo(t *testing.T) {
	ed := New()
	ed.Add(TargetFile, models.NewLiteral("a"))
	ed.Add(TargetFile, models.NewLiteral("b"))

	if !ed.Undo() {
		t.Fatal("Expected undo to succeed")
	}
	if !ed.CanRedo() {
		t.Fatal("Expected a redo step after undo")
	}

	ed.Add(TargetFile, models.NewLiteral("c"))
	if ed.CanRedo() {
		t.Error("Expected redo stack cleared by a new mutation")
	}
	if ed.Redo() {
		t.Error("Expected Redo to be a no-op after invalidation")
	}
}

func TestClearEmptyPatternIsNoOp(t *testing.T) {
	ed := New()
	if ed.Clear(TargetFile) {
		t.Error("Expected Clear on an empty pattern to be a no-op")
	}
	if ed.CanUndo() {
		t.Error("Expected no history entry for a no-op clear")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ed := New()
	ed.Add(TargetFile, models.NewVariable("project_name"))
	ed.Add(TargetFolder, models.NewLiteral("archive"))
	saved := ed.Schema()

	other := New()
	if err := other.Load(saved); err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}

	got := other.Schema()
	if !reflect.DeepEqual(got.FilePattern, saved.FilePattern) {
		t.Errorf("File pattern round-trip mismatch: %+v vs %+v", got.FilePattern, saved.FilePattern)
	}
	if !reflect.DeepEqual(got.FolderPattern, saved.FolderPattern) {
		t.Errorf("Folder pattern round-trip mismatch: %+v vs %+v", got.FolderPattern, saved.FolderPattern)
	}
	if other.Dirty() {
		t.Error("Expected a freshly loaded editor to be clean")
	}
	if other.CanUndo() || other.CanRedo() {
		t.Error("Expected load to clear both history stacks")
	}
}

func TestLoadRejectsInvalidSchema(t *testing.T) {
	ed := New()
	ed.Add(TargetFile, models.NewVariable("project_name"))
	before := ed.Pattern(TargetFile)

	bad := models.Schema{
		Version:       models.SchemaVersion,
		FilePattern:   models.Pattern{{ID: "", Type: models.SegmentLiteral, Value: "x"}},
		FolderPattern: models.Pattern{},
	}
	if err := ed.Load(bad); err == nil {
		t.Fatal("Expected Load to reject a schema with a missing segment ID")
	}
	if !reflect.DeepEqual(ed.Pattern(TargetFile), before) {
		t.Error("Expected current state untouched after rejected load")
	}
}

func TestDirtyFlag(t *testing.T) {
	ed := New()
	if ed.Dirty() {
		t.Error("Expected a new editor to be clean")
	}

	ed.Add(TargetFile, models.NewLiteral("a"))
	if !ed.Dirty() {
		t.Error("Expected dirty after a mutation")
	}

	ed.MarkSaved()
	if ed.Dirty() {
		t.Error("Expected clean after MarkSaved")
	}

	ed.Undo()
	if !ed.Dirty() {
		t.Error("Expected dirty after undo")
	}
}

func TestChangeNotification(t *testing.T) {
	ed := New()

	var calls int
	var last models.Schema
	ed.OnChange(func(s models.Schema) {
		calls++
		last = s
	})

	a := models.NewLiteral("a")
	ed.Add(TargetFile, a)
	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if len(last.FilePattern) != 1 || last.FilePattern[0].ID != a.ID {
		t.Errorf("Expected snapshot with the new segment, got %+v", last.FilePattern)
	}

	// No-ops must not notify
	ed.Remove(TargetFile, "seg_missing")
	ed.Reorder(TargetFile, 0, 0)
	if calls != 1 {
		t.Errorf("Expected no notifications for no-ops, got %d", calls)
	}

	ed.Undo()
	if calls != 2 {
		t.Errorf("Expected notification on undo, got %d calls", calls)
	}
	ed.Redo()
	if calls != 3 {
		t.Errorf("Expected notification on redo, got %d calls", calls)
	}

	if err := ed.Load(ed.Schema()); err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}
	if calls != 4 {
		t.Errorf("Expected notification on load, got %d calls", calls)
	}
}

func TestSchemaSnapshotIsDetached(t *testing.T) {
	ed := New()
	ed.Add(TargetFile, models.NewLiteral("a"))

	snapshot := ed.Schema()
	snapshot.FilePattern[0].Value = "tampered"

	if ed.Pattern(TargetFile)[0].Value != "a" {
		t.Error("Mutating a schema snapshot changed editor state")
	}
}
