package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a backend entity identifier. The backend is not consistent about
// identifier encoding: it sends strings, numbers, or a populated
// reference object ({"id": ...} / {"_id": ...}) for relations. ID accepts
// all three and always marshals as a string.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	case '{':
		var ref struct {
			ID    *ID `json:"id"`
			OID   *ID `json:"_id"`
			Value *ID `json:"value"`
		}
		if err := json.Unmarshal(b, &ref); err != nil {
			return err
		}
		switch {
		case ref.ID != nil:
			*id = *ref.ID
		case ref.OID != nil:
			*id = *ref.OID
		case ref.Value != nil:
			*id = *ref.Value
		default:
			*id = ""
		}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid id %s: %w", b, err)
		}
		if i, err := n.Int64(); err == nil {
			*id = ID(strconv.FormatInt(i, 10))
			return nil
		}
		*id = ID(n.String())
		return nil
	}
}
