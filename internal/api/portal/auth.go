package portal

import (
	"bytes"
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"net/http"
	"net/url"
)

const (
	templateIndex      = "index.html"
	templateTokenEntry = "token_entry.html"

	errNoAccessToken      = "No access token provided"
	errInvalidAccessToken = "Invalid access token"
)

// EndpointIndex handles the 'GET /' endpoint
func (service *Service) EndpointIndex(writer http.ResponseWriter, request *http.Request) {
	ses := sessionFrom(request)
	if _, ok := ses.Credentials(); !ok {
		http.Redirect(writer, request, "/login", http.StatusFound)
		return
	}

	service.render(writer, templateIndex, map[string]any{
		"User":              ses.Claims,
		"IsAuthenticated":   true,
		"GPTDeploymentName": service.Config.GPTDeploymentName,
	})
}

// EndpointLogin handles the 'GET /login' endpoint
func (service *Service) EndpointLogin(writer http.ResponseWriter, request *http.Request) {
	if err := service.destroySession(writer, request); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	http.Redirect(writer, request, "/token-entry", http.StatusFound)
}

// EndpointTokenEntry handles the 'GET /token-entry' endpoint
func (service *Service) EndpointTokenEntry(writer http.ResponseWriter, request *http.Request) {
	service.render(writer, templateTokenEntry, map[string]any{
		"Error": request.URL.Query().Get("error"),
	})
}

// EndpointAuthenticate handles the 'POST /authenticate' endpoint
func (service *Service) EndpointAuthenticate(writer http.ResponseWriter, request *http.Request) {
	token := request.PostFormValue("access_token")
	if token == "" {
		redirectTokenEntry(writer, request, errNoAccessToken)
		return
	}

	ses := sessionFrom(request)
	if !ses.SetCredentials(token, request.PostFormValue("user_name"), request.PostFormValue("user_email")) {
		redirectTokenEntry(writer, request, errInvalidAccessToken)
		return
	}
	if err := service.saveSession(writer, request); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	hlog.FromRequest(request).Info().Str("user", ses.Claims[session.ClaimPreferredUsername]).Msg("session authenticated")
	http.Redirect(writer, request, "/", http.StatusFound)
}

// EndpointAuthRedirect handles the 'GET /auth/redirect' endpoint
func (service *Service) EndpointAuthRedirect(writer http.ResponseWriter, request *http.Request) {
	http.Redirect(writer, request, "/login", http.StatusFound)
}

// EndpointLogout handles the 'GET /logout' endpoint
func (service *Service) EndpointLogout(writer http.ResponseWriter, request *http.Request) {
	sessionFrom(request).ClearCredentials()
	if err := service.destroySession(writer, request); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	http.Redirect(writer, request, "/", http.StatusFound)
}

func redirectTokenEntry(writer http.ResponseWriter, request *http.Request, message string) {
	http.Redirect(writer, request, "/token-entry?"+url.Values{"error": {message}}.Encode(), http.StatusFound)
}

// render executes the given page template and writes it as an HTML response
func (service *Service) render(writer http.ResponseWriter, name string, data any) {
	buf := new(bytes.Buffer)
	if err := service.templates.ExecuteTemplate(buf, name, data); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	writer.Write(buf.Bytes())
}
