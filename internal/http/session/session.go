package session

import (
	"maps"
	"net/http"

	"github.com/pkg/errors"
)

type payload struct {
	Values  map[string]string
	Flashes map[string]string
}

// Session is a mapping of string keys to string values.
//
// Values stored with Flash are emitted by the next Commit only and are
// delivered to exactly the request that loads the resulting cookie, which
// can read each of them once. That request never emits them again.
type Session struct {
	codec *Codec

	values map[string]string
	// flashes written during this request, for the next one
	outgoing map[string]string
	// flashes written by the previous request
	incoming map[string]string
}

// Get returns the value associated with key. Flash values are consumed
// by the read.
func (s *Session) Get(key string) (string, bool) {
	if value, exists := s.outgoing[key]; exists {
		delete(s.outgoing, key)
		return value, true
	}

	if value, exists := s.incoming[key]; exists {
		delete(s.incoming, key)
		return value, true
	}

	value, exists := s.values[key]

	return value, exists
}

// Set stores a value that survives until it is unset or overwritten.
func (s *Session) Set(key string, value string) {
	s.values[key] = value
}

// Flash stores a value delivered once to the next request.
func (s *Session) Flash(key string, value string) {
	s.outgoing[key] = value
}

func (s *Session) Unset(key string) {
	delete(s.values, key)
	delete(s.outgoing, key)
	delete(s.incoming, key)
}

// Commit returns the signed cookie value for the current state of the
// session. Unread incoming flashes are dropped from it; the session itself
// is left untouched.
func (s *Session) Commit() (string, error) {
	p := payload{
		Values:  maps.Clone(s.values),
		Flashes: maps.Clone(s.outgoing),
	}

	encoded, err := s.codec.encode(p)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return encoded, nil
}

// Cookie commits the session and wraps the result in a cookie.
func (s *Session) Cookie() (*http.Cookie, error) {
	value, err := s.Commit()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.codec.cookie(value), nil
}

// Save commits the session and adds the cookie to the response headers.
// It must be called before the response status is written.
func (s *Session) Save(w http.ResponseWriter) error {
	cookie, err := s.Cookie()
	if err != nil {
		return errors.WithStack(err)
	}

	http.SetCookie(w, cookie)

	return nil
}

func newSession(codec *Codec) *Session {
	return &Session{
		codec:    codec,
		values:   make(map[string]string),
		outgoing: make(map[string]string),
		incoming: make(map[string]string),
	}
}
