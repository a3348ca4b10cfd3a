package portal

import (
	"github.com/skybi/translation-portal/internal/api/schema"
	"net/http"
)

// EndpointGetUser handles the 'GET /api/user' endpoint
func (service *Service) EndpointGetUser(writer http.ResponseWriter, request *http.Request) {
	claims := sessionFrom(request).Claims
	if len(claims) == 0 {
		service.writer.WriteError(writer, http.StatusUnauthorized, schema.ErrUnauthenticated)
		return
	}
	service.writer.WriteJSON(writer, claims)
}

// EndpointHealth handles the 'GET /api/health' and 'HEAD /api/health' endpoints
func (service *Service) EndpointHealth(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}
