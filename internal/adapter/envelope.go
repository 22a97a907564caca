package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrap returns the value under key when body is an object that has it,
// and body itself otherwise. The backend is not consistent about wrapping
// single entities ({"client": {...}} vs {...}) and lists.
func unwrap(body []byte, key string) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	if inner, ok := envelope[key]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		return inner
	}
	return trimmed
}

func decodeUnwrapped(body []byte, key string, dst any) error {
	if err := json.Unmarshal(unwrap(body, key), dst); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrMalformedResponse, key, err)
	}
	return nil
}
