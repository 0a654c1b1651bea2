package models

import (
	"fmt"

	"github.com/google/uuid"
)

// SegmentType discriminates the two kinds of pattern segments
type SegmentType string

const (
	// SegmentVariable references a named variable resolved at generation time
	SegmentVariable SegmentType = "variable"

	// SegmentLiteral holds verbatim text (may be empty)
	SegmentLiteral SegmentType = "literal"
)

// Segment is one atomic unit of a naming pattern. IDs are opaque, assigned
// at creation, stable across reorders, and never reused.
type Segment struct {
	ID    string      `json:"id" yaml:"id"`
	Type  SegmentType `json:"type" yaml:"type"`
	Value string      `json:"value" yaml:"value"`
}

// NewLiteral creates a literal segment with a fresh unique ID.
func NewLiteral(text string) Segment {
	return Segment{
		ID:    newSegmentID(),
		Type:  SegmentLiteral,
		Value: text,
	}
}

// NewVariable creates a variable segment with a fresh unique ID. The
// variable name is not checked against any catalog here; resolution
// failures surface at generation time instead.
func NewVariable(name string) Segment {
	return Segment{
		ID:    newSegmentID(),
		Type:  SegmentVariable,
		Value: name,
	}
}

// newSegmentID generates a unique segment identifier
func newSegmentID() string {
	return fmt.Sprintf("seg_%s", uuid.NewString())
}

// Pattern is an ordered sequence of segments. Order is concatenation order
// for name generation. Duplicate values are allowed; IDs are unique.
type Pattern []Segment

// Clone returns an independent copy of the pattern.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}

// IndexOf returns the position of the segment with the given ID, or -1.
func (p Pattern) IndexOf(id string) int {
	for i, seg := range p {
		if seg.ID == id {
			return i
		}
	}
	return -1
}
