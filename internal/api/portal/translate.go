package portal

import (
	"github.com/skybi/translation-portal/internal/api/schema"
	"github.com/skybi/translation-portal/internal/api/validation"
	"github.com/skybi/translation-portal/internal/upstream"
	"net/http"
)

// EndpointTranslate handles the 'POST /api/translate' endpoint
func (service *Service) EndpointTranslate(writer http.ResponseWriter, request *http.Request) {
	from, _ := validation.QueryString(request, "from", false, "en")
	to, _ := validation.QueryString(request, "to", false, "de")
	textType, _ := validation.QueryString(request, "texttype", false, "Plain")
	noCache, _ := validation.QueryString(request, "nocache", false, "")

	body, validationErr, err := schema.ReadJSONBody(request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if validationErr != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, validationErr)
		return
	}

	result, err := service.Platform.Translate(request.Context(), tokenFrom(request), service.Config.TranslatorAPIVersion, upstream.TranslateOptions{
		From:     from,
		To:       to,
		TextType: textType,
		NoCache:  noCache != "",
	}, body)
	service.relay(writer, request, result, err, nil, service.emptyJSON(map[string]any{}))
}
