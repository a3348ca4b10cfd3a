package portal

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/skybi/translation-portal/internal/api/schema"
	"github.com/skybi/translation-portal/internal/api/validation"
	"github.com/skybi/translation-portal/internal/importer"
	"net/http"
)

const maxUploadMemory = 32 << 20

// EndpointGetDocuments handles the 'GET /api/documents' endpoint
func (service *Service) EndpointGetDocuments(writer http.ResponseWriter, request *http.Request) {
	workspaceID, validationErr := validation.QueryString(request, "workspaceId", true, "")
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
		return
	}

	result, err := service.Platform.Documents(request.Context(), tokenFrom(request), workspaceID)
	service.relay(writer, request, result, err, documents, service.emptyJSON([]any{}))
}

// EndpointImportDocument handles the 'POST /api/documents/import' endpoint
func (service *Service) EndpointImportDocument(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(maxUploadMemory); err == nil {
		defer request.MultipartForm.RemoveAll()
	}

	workspaceID := request.URL.Query().Get("workspaceId")
	details := request.FormValue("DocumentDetails")
	file, header, err := request.FormFile("FILES")
	if err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, schema.ErrMissingParameters)
		return
	}
	defer file.Close()
	if workspaceID == "" || details == "" {
		service.writer.WriteError(writer, http.StatusBadRequest, schema.ErrMissingParameters)
		return
	}

	result, err := service.importer.Import(request.Context(), tokenFrom(request), workspaceID, details, &importer.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if errors.Is(err, importer.ErrInvalidDetails) {
		service.writer.WriteError(writer, http.StatusBadRequest, schema.ErrInvalidDocumentDetails)
		return
	}
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]any{}))
}

// EndpointGetImportJob handles the 'GET /api/documents/import/jobs/{job_id}' endpoint
func (service *Service) EndpointGetImportJob(writer http.ResponseWriter, request *http.Request) {
	result, err := service.Platform.ImportJob(request.Context(), tokenFrom(request), chi.URLParam(request, "job_id"))
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]any{}))
}
