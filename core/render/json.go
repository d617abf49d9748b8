package render

import (
	"encoding/json"
	"fmt"

	"github.com/yooung1/sonntag/core"
)

// JSONRenderer produces the indented JSON document of one record, using
// the same field names the history file carries.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals one record.
func (r *JSONRenderer) Render(rec core.ProgramRecord) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
