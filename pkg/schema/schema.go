package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tidydrive/namerule/pkg/models"
)

// InvalidSchemaError reports a value that fails structural validation
// against the naming-rule schema shape.
type InvalidSchemaError struct {
	Reason string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid naming-rule schema: %s", e.Reason)
}

// ValidateSchema checks the structural shape of a decoded schema: a
// positive numeric version and two pattern arrays whose segments carry a
// non-empty id, a known type, and a string value. Whether variable names
// exist in any catalog is deliberately not checked here; the generator
// performs its own lookup and fails there.
func ValidateSchema(s *models.Schema) error {
	if s == nil {
		return &InvalidSchemaError{Reason: "schema is nil"}
	}
	if s.Version < 1 {
		return &InvalidSchemaError{Reason: fmt.Sprintf("unsupported version %d", s.Version)}
	}
	if s.FilePattern == nil {
		return &InvalidSchemaError{Reason: "filePattern is not an array"}
	}
	if s.FolderPattern == nil {
		return &InvalidSchemaError{Reason: "folderPattern is not an array"}
	}
	if err := validatePattern("filePattern", s.FilePattern); err != nil {
		return err
	}
	return validatePattern("folderPattern", s.FolderPattern)
}

func validatePattern(field string, p models.Pattern) error {
	seen := make(map[string]bool, len(p))
	for i, seg := range p {
		if seg.ID == "" {
			return &InvalidSchemaError{Reason: fmt.Sprintf("%s[%d]: missing segment id", field, i)}
		}
		if seen[seg.ID] {
			return &InvalidSchemaError{Reason: fmt.Sprintf("%s[%d]: duplicate segment id %q", field, i, seg.ID)}
		}
		seen[seg.ID] = true
		if seg.Type != models.SegmentVariable && seg.Type != models.SegmentLiteral {
			return &InvalidSchemaError{Reason: fmt.Sprintf("%s[%d]: unknown segment type %q", field, i, seg.Type)}
		}
	}
	return nil
}

// Validate checks an arbitrary decoded value (e.g. the result of
// unmarshalling untrusted JSON into map[string]any) against the schema
// shape. Returns nil iff the value is structurally valid.
func Validate(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &InvalidSchemaError{Reason: err.Error()}
	}
	_, err = DecodeJSON(data)
	return err
}

// DecodeJSON parses and validates a JSON-encoded schema.
func DecodeJSON(data []byte) (*models.Schema, error) {
	var s models.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &InvalidSchemaError{Reason: err.Error()}
	}
	if err := ValidateSchema(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EncodeJSON serializes a schema to indented JSON.
func EncodeJSON(s *models.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// DecodeYAML parses and validates a YAML-encoded schema.
func DecodeYAML(data []byte) (*models.Schema, error) {
	var s models.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &InvalidSchemaError{Reason: err.Error()}
	}
	if err := ValidateSchema(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EncodeYAML serializes a schema to YAML.
func EncodeYAML(s *models.Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// Export returns a copy of the schema stamped for interchange: updatedAt is
// set to now, createdAt is preserved when already present and otherwise left
// for the caller to set on first save.
func Export(s *models.Schema, now time.Time) *models.Schema {
	out := s.Clone()
	if out.Metadata == nil {
		out.Metadata = &models.Metadata{}
	}
	out.Metadata.UpdatedAt = models.FormatTimestamp(now)
	return &out
}
