package portal

import (
	"context"
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"github.com/skybi/translation-portal/internal/secret"
	"net/http"
	"time"
)

type contextKey string

const contextValueSession contextKey = "session"

var (
	cookieNameSession = "session"
	sessionIDLength   = 32
)

// requestSession binds a session to the raw ID transported in the session cookie
type requestSession struct {
	raw string
	ses *session.Session
}

// MiddlewareLoadSession loads the session referenced by the session cookie and injects it into the request context.
// Requests without a valid cookie or with an expired session get a fresh session which is only persisted once a
// handler saves it.
func (service *Service) MiddlewareLoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		current, err := service.loadSession(request)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		request = request.WithContext(context.WithValue(request.Context(), contextValueSession, current))
		next.ServeHTTP(writer, request)
	})
}

func (service *Service) loadSession(request *http.Request) (*requestSession, error) {
	cookie, err := request.Cookie(cookieNameSession)
	if err != nil {
		return newRequestSession(), nil
	}
	raw, ok := secret.Verify(service.Config.SecretKey, cookie.Value)
	if !ok {
		hlog.FromRequest(request).Debug().Msg("discarding session cookie with invalid signature")
		return newRequestSession(), nil
	}
	id, err := secret.Hash(raw)
	if err != nil {
		return newRequestSession(), nil
	}

	ses, err := service.Sessions.Get(request.Context(), id)
	if err != nil {
		return nil, err
	}
	if ses == nil {
		return newRequestSession(), nil
	}
	if ses.Expired(time.Now()) {
		if err := service.Sessions.Delete(request.Context(), id); err != nil {
			return nil, err
		}
		return newRequestSession(), nil
	}
	return &requestSession{raw: raw, ses: ses}, nil
}

func newRequestSession() *requestSession {
	raw, id := secret.MustNew(sessionIDLength)
	return &requestSession{raw: raw, ses: session.New(id)}
}

func currentSession(request *http.Request) *requestSession {
	return request.Context().Value(contextValueSession).(*requestSession)
}

// sessionFrom returns the session bound to the given request
func sessionFrom(request *http.Request) *session.Session {
	return currentSession(request).ses
}

// tokenFrom returns the access token stored in the session bound to the given request (may be empty)
func tokenFrom(request *http.Request) string {
	token, _ := sessionFrom(request).Credentials()
	return token
}

// saveSession persists the session bound to the request, renews its lifetime and (re-)issues the session cookie
func (service *Service) saveSession(writer http.ResponseWriter, request *http.Request) error {
	current := currentSession(request)
	current.ses.Touch(time.Now(), service.Config.SessionLifetime)
	if err := service.Sessions.Set(request.Context(), current.ses); err != nil {
		return err
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameSession,
		Value:    secret.Sign(service.Config.SecretKey, current.raw),
		Path:     "/",
		MaxAge:   int(service.Config.SessionLifetime.Seconds()),
		Secure:   service.Config.IsEnvProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// destroySession deletes the session bound to the request and unsets the session cookie.
// The request is bound to a fresh session afterwards.
func (service *Service) destroySession(writer http.ResponseWriter, request *http.Request) error {
	current := currentSession(request)
	if err := service.Sessions.Delete(request.Context(), current.ses.ID); err != nil {
		return err
	}
	*current = *newRequestSession()
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameSession,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Second),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}
