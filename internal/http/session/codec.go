package session

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/scribe/internal/metrics"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

// Codec reads and writes sessions carried entirely by a signed cookie.
// Signing and verification use the codecs of the underlying cookie store:
// the first codec signs, every codec is tried on verify.
type Codec struct {
	name  string
	store *sessions.CookieStore
}

// Load decodes the session from a raw Cookie header value.
// It never fails: a missing or invalid cookie yields an empty session.
func (c *Codec) Load(cookieHeader string) *Session {
	req := &http.Request{
		Header: http.Header{"Cookie": []string{cookieHeader}},
	}

	return c.LoadRequest(req)
}

// LoadRequest decodes the session from the cookies of the given request.
func (c *Codec) LoadRequest(r *http.Request) *Session {
	sess := newSession(c)

	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return sess
	}

	var p payload

	if err := securecookie.DecodeMulti(c.name, cookie.Value, &p, c.store.Codecs...); err != nil {
		metrics.SessionDecodeFailures.Inc()

		slog.DebugContext(r.Context(), "discarding invalid session cookie", slogx.Error(errors.WithStack(err)))

		return sess
	}

	if p.Values != nil {
		sess.values = p.Values
	}

	if p.Flashes != nil {
		sess.incoming = p.Flashes
	}

	return sess
}

func (c *Codec) encode(p payload) (string, error) {
	encoded, err := securecookie.EncodeMulti(c.name, p, c.store.Codecs...)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return encoded, nil
}

func (c *Codec) cookie(value string) *http.Cookie {
	opts := c.store.Options
	if opts == nil {
		opts = &sessions.Options{Path: "/"}
	}

	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: opts.HttpOnly,
		SameSite: opts.SameSite,
	}
}

func NewCodec(name string, store *sessions.CookieStore) *Codec {
	return &Codec{
		name:  name,
		store: store,
	}
}

// NewCookieStore creates a cookie store signing with the first secret and
// verifying with every given secret. Values are signed, not encrypted.
func NewCookieStore(secrets ...[]byte) *sessions.CookieStore {
	keyPairs := make([][]byte, 0, len(secrets)*2)
	for _, s := range secrets {
		keyPairs = append(keyPairs, s, nil)
	}

	return sessions.NewCookieStore(keyPairs...)
}
