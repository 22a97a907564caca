package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
		want string
	}{
		{name: "wrapped", body: `{"user":{"email":"a"}}`, key: "user", want: `{"email":"a"}`},
		{name: "bare object", body: `{"email":"a"}`, key: "user", want: `{"email":"a"}`},
		{name: "null inner", body: `{"user":null,"email":"a"}`, key: "user", want: `{"user":null,"email":"a"}`},
		{name: "array", body: ` [1,2] `, key: "clients", want: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(unwrap([]byte(tt.body), tt.key)))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "nope", errorMessage([]byte(`{"message":"nope"}`)))
	assert.Equal(t, "plain text", errorMessage([]byte("  plain text \n")))
}
