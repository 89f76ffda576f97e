package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"personalab/internal/core/persona"
)

// document is what render and validate accept: a stored record, a payload,
// or a bare persona body
type document struct {
	Record persona.Record
	// Wrapped is set when title and locale came with the body
	Wrapped bool
}

// readInput reads path, "-" meaning r
func readInput(path string, r io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(path)
}

// decodeDocument detects the wrapper by the presence of a data member. Unknown
// members are ignored the same way the API ignores them
func decodeDocument(raw []byte) (document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return document{}, fmt.Errorf("input is not a JSON object: %w", err)
	}

	if _, ok := probe["data"]; !ok {
		var d persona.Data
		if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&d); err != nil {
			return document{}, fmt.Errorf("decode persona data: %w", err)
		}
		return document{Record: persona.Record{Data: d}}, nil
	}

	var rec persona.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return document{}, fmt.Errorf("decode persona record: %w", err)
	}
	return document{Record: rec, Wrapped: true}, nil
}

// prepare fills what an offline record lacks. Records without an id bypass
// the render cache, so the id is left alone
func (d *document) prepare(title string, now time.Time) {
	if title != "" {
		d.Record.Title = title
	}
	if d.Record.Title == "" {
		d.Record.Title = "Persona"
	}
	if d.Record.CreatedAt.IsZero() {
		d.Record.CreatedAt = now
	}
	if d.Record.UpdatedAt.IsZero() {
		d.Record.UpdatedAt = d.Record.CreatedAt
	}
}
