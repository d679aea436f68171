package session

import (
	"context"
	"net/http"
)

type contextKey string

const keySession contextKey = "session"

// FromContext returns the session attached to the context, or nil.
func FromContext(ctx context.Context) *Session {
	sess, ok := ctx.Value(keySession).(*Session)
	if !ok {
		return nil
	}

	return sess
}

func WithContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, keySession, sess)
}

// Middleware loads the session of each request and attaches it to the
// request context. Handlers still have to save it explicitly.
func Middleware(codec *Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := codec.LoadRequest(r)
			ctx := WithContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
