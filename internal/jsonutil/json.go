// internal/jsonutil/json.go
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarshalPretty is EncodePretty into a fresh buffer (trailing newline included).
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
