package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Reserved draft keys. They are owned by the draft itself and are never
// taken from a patch.
const (
	FieldID       = "id"
	FieldUpdating = "updating"
)

// Fields is a free-form partial entity record keyed by backend JSON field
// name. Wizard steps produce Fields patches that are shallow-merged into the
// shared draft.
type Fields map[string]any

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge returns a copy of f with every key of patch written on top.
// Reserved keys in patch are skipped.
func (f Fields) Merge(patch Fields) Fields {
	out := f.Clone()
	for k, v := range patch {
		if k == FieldID || k == FieldUpdating {
			continue
		}
		out[k] = v
	}
	return out
}

// String returns the value of key as a string, or "" if it is missing.
func (f Fields) String(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case ID:
		return string(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case map[string]any:
		// Populated reference: render the id it points to.
		return string(refID(s))
	default:
		return fmt.Sprint(v)
	}
}

// Decode converts f into the typed record pointed to by dst.
func (f Fields) Decode(dst any) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	if err = json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	return nil
}

// FieldsOf converts a typed record into Fields.
func FieldsOf(v any) (Fields, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	out := Fields{}
	if err = json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

func refID(ref map[string]any) ID {
	payload, err := json.Marshal(ref)
	if err != nil {
		return ""
	}
	var id ID
	if err = json.Unmarshal(payload, &id); err != nil {
		return ""
	}
	return id
}
