package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetCredentials(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		userName   string
		userEmail  string
		wantOK     bool
		wantClaims map[string]string
	}{
		{
			name:   "empty token",
			wantOK: false,
		},
		{
			name:       "token only",
			token:      "abc",
			wantOK:     true,
			wantClaims: map[string]string{"name": "Authenticated User", "preferred_username": "user@example.com"},
		},
		{
			name:       "name only",
			token:      "abc",
			userName:   "Jane",
			wantOK:     true,
			wantClaims: map[string]string{"name": "Jane"},
		},
		{
			name:       "name and email",
			token:      "abc",
			userName:   "Jane",
			userEmail:  "jane@example.org",
			wantOK:     true,
			wantClaims: map[string]string{"name": "Jane", "preferred_username": "jane@example.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ses := New("id")
			ok := ses.SetCredentials(tt.token, tt.userName, tt.userEmail)
			assert.Equal(t, tt.wantOK, ok)

			token, present := ses.Credentials()
			assert.Equal(t, tt.wantOK, present)
			assert.Equal(t, tt.token, token)
			assert.Equal(t, tt.wantClaims, ses.Claims)
		})
	}
}

func TestClearCredentials(t *testing.T) {
	ses := New("id")
	ses.SetCredentials("abc", "", "")
	ses.AuthError = map[string]string{"error": "invalid_grant"}

	ses.ClearCredentials()

	_, present := ses.Credentials()
	assert.False(t, present)
	assert.Nil(t, ses.Claims)
	assert.Nil(t, ses.AuthError)
}

func TestExpired(t *testing.T) {
	now := time.Unix(1000, 0)
	ses := New("id")
	assert.False(t, ses.Expired(now), "sessions without expiry never expire")

	ses.Touch(now, time.Minute)
	assert.False(t, ses.Expired(now))
	assert.True(t, ses.Expired(now.Add(time.Minute)))
}
