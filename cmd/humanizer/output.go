package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/humanizer/internal/schemas"
)

// errorDoc is the only shape written on failure.
type errorDoc struct {
	Error string `json:"error"`
}

// writeJSON encodes doc as one line, checks it against its schema, then writes it.
// Nothing is written if encoding or validation fails.
func writeJSON(w io.Writer, doc any, validate func([]byte) error) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if validate != nil {
		if err := validate(bytes.TrimSpace(buf.Bytes())); err != nil {
			return fmt.Errorf("output does not validate against schema: %w", err)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeError writes {"error": ...}. Write failures are ignored; there is no
// other channel left to report them on.
func writeError(w io.Writer, err error) {
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	_ = writeJSON(w, errorDoc{Error: msg}, schemas.ValidateError)
}
