package models

import "time"

// SchemaVersion is the current interchange format version
const SchemaVersion = 1

// Metadata carries optional descriptive fields on an exported schema.
// Timestamps are RFC 3339 strings; stamping them is the exporter's job.
type Metadata struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Schema is the serializable bundle of both naming patterns plus metadata.
// It is the persisted/exported counterpart of an editor's live state.
type Schema struct {
	Version       int       `json:"version" yaml:"version"`
	FilePattern   Pattern   `json:"filePattern" yaml:"filePattern"`
	FolderPattern Pattern   `json:"folderPattern" yaml:"folderPattern"`
	Metadata      *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := Schema{
		Version:       s.Version,
		FilePattern:   s.FilePattern.Clone(),
		FolderPattern: s.FolderPattern.Clone(),
	}
	if s.Metadata != nil {
		meta := *s.Metadata
		out.Metadata = &meta
	}
	return out
}

// FormatTimestamp formats a time.Time into the metadata timestamp format
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp parses a metadata timestamp string into time.Time
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
