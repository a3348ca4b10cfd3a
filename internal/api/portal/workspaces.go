package portal

import (
	"github.com/go-chi/chi/v5"
	"net/http"
)

// EndpointGetWorkspaces handles the 'GET /api/workspaces' endpoint
func (service *Service) EndpointGetWorkspaces(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Platform.Workspaces(request.Context(), tokenFrom(request))
	service.relay(writer, request, result, err, nil, service.emptyJSON([]any{}))
}

// EndpointGetWorkspace handles the 'GET /api/workspaces/{id}' endpoint
func (service *Service) EndpointGetWorkspace(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Platform.Workspace(request.Context(), tokenFrom(request), chi.URLParam(request, "id"))
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]any{}))
}
