package portal

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/translation-portal/internal/api/schema"
	"github.com/skybi/translation-portal/internal/api/validation"
	"mime"
	"net/http"
)

var (
	requiredIndexDetailsKeys = []string{"documentIds", "IndexName", "SourceLanguage", "TargetLanguage"}
	requiredIndexBodyKeys    = []string{"name", "sourceLanguage", "targetLanguage"}
)

// EndpointGetIndices handles the 'GET /api/index' endpoint
func (service *Service) EndpointGetIndices(writer http.ResponseWriter, request *http.Request) {
	workspaceID, validationErr := validation.QueryString(request, "workspaceId", true, "")
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
		return
	}

	result, err := service.Platform.Indices(request.Context(), tokenFrom(request), workspaceID)
	service.relay(writer, request, result, err, indices, service.emptyJSON([]any{}))
}

// EndpointGetIndex handles the 'GET /api/index/{id}' endpoint
func (service *Service) EndpointGetIndex(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Platform.Index(request.Context(), tokenFrom(request), chi.URLParam(request, "id"))
	service.relay(writer, request, result, err, nil, func(writer http.ResponseWriter, _ int) {
		service.writer.WriteError(writer, http.StatusNotFound, schema.ErrUpstreamEmpty)
	})
}

// EndpointCreateIndex handles the 'POST /api/index' endpoint.
// It accepts either a multipart form carrying the JSON encoded 'IndexDetails' field or a plain JSON body.
func (service *Service) EndpointCreateIndex(writer http.ResponseWriter, request *http.Request) {
	workspaceID, validationErr := validation.QueryString(request, "workspaceId", true, "")
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
		return
	}

	var body []byte
	if isMultipart(request) {
		details, validationErr := indexDetails(request)
		if validationErr != nil {
			service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
			return
		}
		body = []byte(details)
	} else {
		raw, validationErr, err := schema.ReadJSONBody(request)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		if validationErr == nil {
			validationErr = requireObjectKeys(raw, requiredIndexBodyKeys, nil)
		}
		if validationErr != nil {
			service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
			return
		}
		body = raw
	}

	hlog.FromRequest(request).Debug().Str("workspace_id", workspaceID).Bytes("details", body).Msg("creating index")
	result, err := service.Platform.CreateIndex(request.Context(), tokenFrom(request), workspaceID, body)
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]string{
		"message": "Index creation initiated - no content returned",
	}))
}

// EndpointDeleteIndex handles the 'DELETE /api/index/{id}' endpoint
func (service *Service) EndpointDeleteIndex(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Platform.DeleteIndex(request.Context(), tokenFrom(request), chi.URLParam(request, "id"))
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]any{}))
}

func isMultipart(request *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// indexDetails extracts and validates the 'IndexDetails' form field
func indexDetails(request *http.Request) (string, *schema.Error) {
	if err := request.ParseMultipartForm(maxUploadMemory); err != nil {
		return "", schema.ErrMissingIndexDetails
	}
	defer request.MultipartForm.RemoveAll()

	details := request.FormValue("IndexDetails")
	if details == "" {
		return "", schema.ErrMissingIndexDetails
	}
	if validationErr := requireObjectKeys([]byte(details), requiredIndexDetailsKeys, schema.ErrInvalidIndexDetails); validationErr != nil {
		return "", validationErr
	}
	return details, nil
}

// requireObjectKeys makes sure raw is a JSON object containing every key.
// If malformed is set, it replaces the error reported for input that is no JSON object.
func requireObjectKeys(raw []byte, keys []string, malformed *schema.Error) *schema.Error {
	obj, validationErr := schema.UnmarshalObject(raw)
	if validationErr != nil {
		if malformed != nil {
			return malformed
		}
		return validationErr
	}
	return validation.RequireKeys(obj, keys...)
}
