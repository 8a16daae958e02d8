package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest holds the few package.json fields discovery consumes.
// Each field is extracted on its own; values of the wrong type are absent.
type Manifest struct {
	Name        string
	Title       string
	DisplayName string
	Scripts     map[string]string
}

// ResolvedTitle returns the manifest title, falling back to displayName.
func (m *Manifest) ResolvedTitle() string {
	if m == nil {
		return ""
	}
	if m.Title != "" {
		return m.Title
	}
	return m.DisplayName
}

// ParseManifest decodes package.json content.
//
// Returns (nil, nil) when the document is the JSON literal null, which carries
// no manifest. A document that is valid JSON but not an object yields an empty
// Manifest. Syntax errors are reported as *MetadataError with line and column.
func ParseManifest(content []byte, filePath string) (*Manifest, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, wrapJSONError(err, content, filePath)
	}

	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	m := &Manifest{Scripts: map[string]string{}}

	var fields map[string]json.RawMessage
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return m, nil
	}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, wrapJSONError(err, content, filePath)
	}

	m.Name = stringField(fields, "name")
	m.Title = stringField(fields, "title")
	m.DisplayName = stringField(fields, "displayName")
	m.Scripts = scriptsField(fields)

	return m, nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// scriptsField keeps only string-valued entries of the scripts object.
func scriptsField(fields map[string]json.RawMessage) map[string]string {
	scripts := map[string]string{}

	raw, ok := fields["scripts"]
	if !ok {
		return scripts
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return scripts
	}

	for name, value := range entries {
		var command string
		if err := json.Unmarshal(value, &command); err != nil {
			continue
		}
		scripts[name] = command
	}
	return scripts
}

// offsetToLineColumn converts a byte offset into 1-based line and column.
func offsetToLineColumn(content []byte, offset int64) (int, int) {
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	line, col := 1, 1
	for _, b := range content[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// wrapJSONError converts encoding/json errors to MetadataError with positions.
func wrapJSONError(err error, content []byte, filePath string) error {
	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		line, col := offsetToLineColumn(content, syntaxErr.Offset)
		return &MetadataError{
			FilePath: filePath,
			Line:     line,
			Column:   col,
			Message:  syntaxErr.Error(),
			Err:      err,
		}
	}

	return &MetadataError{
		FilePath: filePath,
		Message:  fmt.Sprintf("invalid manifest: %v", err),
		Err:      err,
	}
}
