// Package namegen renders naming patterns into final file and folder
// names. Generation is a pure computation over its inputs: same pattern,
// bindings, and date always produce the same string, and a failed
// generation returns an error with no partial output.
package namegen

import (
	"strings"
	"time"

	"github.com/tidydrive/namerule/pkg/models"
)

// reservedChars is the blocklist applied to resolved variable values. It
// matches the character set rejected for user-entered file and folder
// names elsewhere in the system.
const reservedChars = `<>:"/\|?*`

// Options carries the per-call generation context.
type Options struct {
	// OriginalFileName supplies the extension preserved on generated file
	// names. Ignored for folder names.
	OriginalFileName string

	// Date resolves reserved date tokens. Zero value means time.Now().
	Date time.Time
}

// GenerateFileName renders a file pattern. When OriginalFileName carries an
// extension, it is appended to the generated name unless the name already
// ends with it.
func GenerateFileName(pattern models.Pattern, bindings map[string]string, opts Options) (string, error) {
	name, err := render(pattern, bindings, opts.date())
	if err != nil {
		return "", err
	}
	if ext := fileExtension(opts.OriginalFileName); ext != "" {
		if !strings.HasSuffix(name, "."+ext) {
			name += "." + ext
		}
	}
	return name, nil
}

// GenerateFolderName renders a folder pattern. It produces a single folder
// level per call; joining levels into a path is the caller's concern.
func GenerateFolderName(pattern models.Pattern, bindings map[string]string, opts Options) (string, error) {
	return render(pattern, bindings, opts.date())
}

func (o Options) date() time.Time {
	if o.Date.IsZero() {
		return time.Now()
	}
	return o.Date
}

// render concatenates the pattern segments in order. Literals are appended
// verbatim; variables resolve against the reserved date-token table first,
// then against bindings.
func render(pattern models.Pattern, bindings map[string]string, date time.Time) (string, error) {
	var sb strings.Builder
	for _, seg := range pattern {
		switch seg.Type {
		case models.SegmentLiteral:
			sb.WriteString(seg.Value)
		case models.SegmentVariable:
			if format, ok := dateTokens[seg.Value]; ok {
				sb.WriteString(format(date))
				continue
			}
			value, ok := bindings[seg.Value]
			if !ok {
				return "", &MissingVariableError{Variable: seg.Value}
			}
			if i := strings.IndexAny(value, reservedChars); i >= 0 {
				return "", &InvalidCharacterError{
					Variable: seg.Value,
					Value:    value,
					Char:     rune(value[i]),
				}
			}
			sb.WriteString(value)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResult
	}
	return sb.String(), nil
}

// fileExtension returns the extension of name: the text after the last
// dot, when non-empty and not the whole name.
func fileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
