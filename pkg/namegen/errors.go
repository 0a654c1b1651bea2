package namegen

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when a pattern resolves to an empty string.
var ErrEmptyResult = errors.New("generated name is empty")

// MissingVariableError reports a variable segment with no matching binding.
// Generation is atomic: nothing partial is returned alongside it.
type MissingVariableError struct {
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("no binding for variable %q", e.Variable)
}

// InvalidCharacterError reports a resolved variable value containing a
// filesystem-reserved character.
type InvalidCharacterError struct {
	Variable string
	Value    string
	Char     rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("value %q for variable %q contains reserved character %q", e.Value, e.Variable, e.Char)
}
