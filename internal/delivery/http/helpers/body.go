package helpers

import (
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// MaxBodyBytes caps how much of a request body ReadJSONBody reads.
const MaxBodyBytes = 1 << 20

type bodyKey struct{}

// WithParsedBody returns a context carrying an already-decoded request body.
// ReadJSONBody prefers it over the request stream. Nothing in this module sets it; it is an
// extension point for callers that embed the handlers behind their own body decoding.
func WithParsedBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// ReadJSONBody returns the request body as a JSON object. An empty body, malformed JSON or a
// non-object value all yield an empty map; required-field checks downstream reject what matters.
// Bodies larger than MaxBodyBytes are treated as empty.
func ReadJSONBody(r *http.Request) map[string]any {
	if body, ok := r.Context().Value(bodyKey{}).(map[string]any); ok && body != nil {
		return body
	}
	if r.Body == nil {
		return map[string]any{}
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil || len(raw) == 0 || len(raw) > MaxBodyBytes {
		return map[string]any{}
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return map[string]any{}
	}
	return body
}

// StringField returns body[key] when it is a string, otherwise "".
func StringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}
