package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes notes into the durable slot format: a compact JSON array
// of {id, title, content} objects. The output is deterministic and canonical:
// keys always come in that order and U+2028/U+2029 are escaped. Decoding and
// re-encoding a slot is byte-stable only for canonical input; a slot written
// by another producer (different key order, raw line separators) keeps its
// notes but is rewritten in canonical form.
func Encode(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses the durable slot format. Empty input and JSON null decode to
// an empty collection.
func Decode(data []byte) ([]Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Note{}, nil
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("malformed notes slot: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}
