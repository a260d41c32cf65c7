package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/joestump/content-genius/internal/llm"
)

// decodeFields reads a JSON object into fields, keeping the key order of the
// body. A repeated key keeps its first position and its last value. Strings are used as-is; any other value is kept as its compact JSON
// text (200, true, null, [..]).
func decodeFields(r io.Reader) (llm.Fields, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("invalid request body: expected a JSON object")
	}

	var fields llm.Fields
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("invalid request body: expected an object key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid request body: field %q: %w", key, err)
		}
		value, err := fieldValue(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid request body: field %q: %w", key, err)
		}
		fields.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return fields, nil
}

func fieldValue(raw json.RawMessage) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
