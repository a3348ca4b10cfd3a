package session

const (
	ClaimName              = "name"
	ClaimPreferredUsername = "preferred_username"
)

// DefaultClaims returns the identity claims assigned to sessions whose user did not provide any
func DefaultClaims() map[string]string {
	return map[string]string{
		ClaimName:              "Authenticated User",
		ClaimPreferredUsername: "user@example.com",
	}
}

// SetCredentials stores an access token and the identity claims built from name and email.
// Any non-empty token is accepted; false is only returned if the token is empty.
func (ses *Session) SetCredentials(token, name, email string) bool {
	if token == "" {
		return false
	}
	ses.AccessToken = token

	if name == "" && email == "" {
		ses.Claims = DefaultClaims()
		return true
	}
	claims := make(map[string]string, 2)
	if name != "" {
		claims[ClaimName] = name
	}
	if email != "" {
		claims[ClaimPreferredUsername] = email
	}
	ses.Claims = claims
	return true
}

// Credentials returns the stored access token and whether one is present
func (ses *Session) Credentials() (string, bool) {
	return ses.AccessToken, ses.AccessToken != ""
}

// ClearCredentials removes the access token, the identity claims and any stored authentication error
func (ses *Session) ClearCredentials() {
	ses.AccessToken = ""
	ses.Claims = nil
	ses.AuthError = nil
}
