package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty body", body: "", want: "fallback"},
		{name: "whitespace body", body: "  \n", want: "fallback"},
		{name: "plain text", body: "Bad Gateway", want: "Bad Gateway"},
		{name: "json string", body: `"Token expired"`, want: "Token expired"},
		{name: "error string", body: `{"error":"Invalid credentials","detail":"ignored"}`, want: "Invalid credentials"},
		{name: "error array", body: `{"error":["one","two"]}`, want: "one, two"},
		{name: "detail", body: `{"detail":"Authentication credentials were not provided."}`, want: "Authentication credentials were not provided."},
		{name: "message", body: `{"message":"Quota exceeded","success":false}`, want: "Quota exceeded"},
		{name: "empty error falls through", body: `{"error":"","message":"used"}`, want: "used"},
		{name: "errors array", body: `{"errors":["a","b"]}`, want: "a, b"},
		{name: "errors map sorted", body: `{"errors":{"password":["too short","no digit"],"email":"taken"}}`, want: "email: taken | password: too short | password: no digit"},
		{name: "field keys", body: `{"email":["Enter a valid email."],"non_field_errors":["Unable to log in."]}`, want: "Enter a valid email. | Unable to log in."},
		{name: "unknown object returns raw", body: `{"code":42}`, want: `{"code":42}`},
		{name: "array returns raw", body: `[1,2]`, want: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMessage([]byte(tt.body), "fallback"))
		})
	}
}
