package portal

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog/hlog"
	"github.com/skybi/translation-portal/internal/api/schema"
	"github.com/skybi/translation-portal/internal/normalize"
	"github.com/skybi/translation-portal/internal/upstream"
	"net/http"
)

// emptyReply writes the response used when the platform answered with an empty body
type emptyReply func(writer http.ResponseWriter, status int)

// transform reshapes a JSON platform body before it is sent to the client
type transform func(payload json.RawMessage) (any, error)

// emptyJSON replies with the given value and the platform's status code
func (service *Service) emptyJSON(value any) emptyReply {
	return func(writer http.ResponseWriter, status int) {
		service.writer.WriteJSONCode(writer, status, value)
	}
}

// relay writes a platform result to the client.
// JSON bodies are passed through (or reshaped by fn), empty bodies are replaced by onEmpty and non-JSON bodies are
// reported together with the raw body. The platform's status code is kept in every case.
func (service *Service) relay(writer http.ResponseWriter, request *http.Request, result *upstream.Result, err error, fn transform, onEmpty emptyReply) {
	if err != nil {
		service.upstreamError(writer, request, err)
		return
	}

	parsed := result.Parse()
	switch parsed.Kind {
	case upstream.KindEmpty:
		onEmpty(writer, parsed.Status)
	case upstream.KindNonJSON:
		service.writer.WriteError(writer, parsed.Status, schema.ErrUpstreamInvalidJSON(parsed.Raw))
	default:
		if fn == nil {
			service.writer.WriteRawJSON(writer, parsed.Status, parsed.JSON)
			return
		}
		value, err := fn(parsed.JSON)
		if err != nil {
			if errors.Is(err, normalize.ErrMalformedEntry) {
				hlog.FromRequest(request).Warn().Err(err).Msg("translation platform returned an unexpected schema")
				service.writer.WriteError(writer, parsed.Status, schema.ErrUpstreamInvalidJSON(string(result.Body)))
				return
			}
			service.writer.WriteInternalError(writer, err)
			return
		}
		service.writer.WriteJSONCode(writer, parsed.Status, value)
	}
}

// upstreamError reports a failed platform call
func (service *Service) upstreamError(writer http.ResponseWriter, request *http.Request, err error) {
	if errors.Is(err, upstream.ErrUnreachable) {
		hlog.FromRequest(request).Error().Err(err).Msg("could not reach the translation platform")
		service.writer.WriteError(writer, http.StatusBadGateway, schema.ErrUpstreamUnavailable)
		return
	}
	service.writer.WriteInternalError(writer, err)
}

func documents(payload json.RawMessage) (any, error) {
	docs, err := normalize.Documents(payload)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*normalize.Document{}
	}
	return docs, nil
}

func indices(payload json.RawMessage) (any, error) {
	list, err := normalize.Indices(payload)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*normalize.Index{}
	}
	return list, nil
}
