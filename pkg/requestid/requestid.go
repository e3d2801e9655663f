// Package requestid carries the id of an API request through its context.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request header a caller can use to supply its own id.
const Header = "X-Request-Id"

type contextKey struct{}

// Generate returns a fresh random id.
func Generate() string {
	return uuid.New().String()
}

func ToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// FromContextPtr is FromContext for optional response fields.
func FromContextPtr(ctx context.Context) *string {
	if id := FromContext(ctx); id != "" {
		return &id
	}
	return nil
}

func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}
