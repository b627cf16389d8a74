package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// Session is the per-request view of a client's session.
// It is either anonymous or holds exactly one authenticated username.
type Session struct {
	raw *sessions.Session
	r   *http.Request
	w   http.ResponseWriter
}

// Username returns the signed-in username, or "" when anonymous.
func (s *Session) Username() string {
	name, _ := s.raw.Values[usernameKey].(string)
	return name
}

// IsAuthenticated reports whether a username is present.
func (s *Session) IsAuthenticated() bool {
	return s.Username() != ""
}

// SignIn records username in the session.
func (s *Session) SignIn(username string) {
	s.raw.Values[usernameKey] = username
}

// SignOut clears the username. Queued notices survive so they can be shown after the redirect.
func (s *Session) SignOut() {
	delete(s.raw.Values, usernameKey)
}

// AddFlash queues a one-shot notice for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.raw.AddFlash(msg)
}

// Flashes drains the queued notices. Save must be called for the drain to stick.
func (s *Session) Flashes() []string {
	raw := s.raw.Flashes()
	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Save writes the session cookie. It must run before the response body is written.
func (s *Session) Save() error {
	if err := s.raw.Save(s.r, s.w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
