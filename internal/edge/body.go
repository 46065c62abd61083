package edge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrBadBody = errors.New("body must be a JSON object, an array or {\"dados\": [...]}")

// SplitBody accepts a single object, an array of objects, or an object
// wrapping either under "dados", and returns one raw message per row.
func SplitBody(raw []byte) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrBadBody
	}
	switch raw[0] {
	case '[':
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadBody, err)
		}
		return rows, nil
	case '{':
		var wrapper struct {
			Dados json.RawMessage `json:"dados"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadBody, err)
		}
		d := bytes.TrimSpace(wrapper.Dados)
		if len(d) > 0 && (d[0] == '[' || d[0] == '{') {
			return SplitBody(d)
		}
		return []json.RawMessage{json.RawMessage(raw)}, nil
	default:
		return nil, ErrBadBody
	}
}

// Decode unmarshals a row, tagging failures as ErrBadRow.
func Decode(row json.RawMessage, dst any) error {
	if err := json.Unmarshal(row, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRow, err)
	}
	return nil
}

// Echo returns the row as a generic value for Falha.Dados.
func Echo(row json.RawMessage) any {
	var v any
	if json.Unmarshal(row, &v) != nil {
		return string(row)
	}
	return v
}
