package session

import "time"

// Session represents a browser session at the portal.
// A session is identified by the hash of its raw ID; the raw ID itself only ever lives in the signed session cookie.
type Session struct {
	ID          string            `json:"id"`
	AccessToken string            `json:"access_token,omitempty"`
	Claims      map[string]string `json:"id_token_claims,omitempty"`
	AuthError   map[string]string `json:"auth_error,omitempty"`
	Expires     int64             `json:"expires"`
}

// New creates a new empty session identified by the given (hashed) ID
func New(id string) *Session {
	return &Session{ID: id}
}

// Expired returns whether the session lifetime has passed at the given time
func (ses *Session) Expired(now time.Time) bool {
	return ses.Expires > 0 && ses.Expires <= now.Unix()
}

// Touch sets the expiration of the session to now + lifetime
func (ses *Session) Touch(now time.Time, lifetime time.Duration) {
	ses.Expires = now.Add(lifetime).Unix()
}
