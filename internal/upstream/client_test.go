package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skybi/translation-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(&config.Config{
		APIURL:         server.URL + "/",
		TranslatorURL:  server.URL + "/translate?deployment=adaptive",
		TranslationKey: "sub-key",
		Region:         "westeurope",
		GPTURL:         "https://llm.example.org",
		GPTKey:         "llm-key",
	})
}

func TestClientAttachesHeaders(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		captured = request
		writer.Write([]byte(`[]`))
	})

	result, err := client.Workspaces(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)

	require.NotNil(t, captured)
	assert.Equal(t, "/api/texttranslator/v1.0/workspaces/", captured.URL.Path)
	assert.Equal(t, "Bearer tok", captured.Header.Get("Authorization"))
	assert.Equal(t, "sub-key", captured.Header.Get("Ocp-Apim-Subscription-Key"))
	assert.Equal(t, "westeurope", captured.Header.Get("Ocp-Apim-Subscription-Region"))
	assert.Equal(t, "https://llm.example.org", captured.Header.Get("llm-endpoint"))
	assert.Equal(t, "llm-key", captured.Header.Get("llm-key"))
	assert.Equal(t, "true", captured.Header.Get("preview-api"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))
}

func TestClientForwardsEmptyToken(t *testing.T) {
	var authorization string
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		authorization = request.Header.Get("Authorization")
		writer.WriteHeader(http.StatusUnauthorized)
	})

	result, err := client.Index(context.Background(), "", "idx-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, result.Status)
	assert.Equal(t, "Bearer", authorization)
}

func TestClientDocumentsQuery(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		captured = request
	})

	_, err := client.Documents(context.Background(), "tok", "ws 1")
	require.NoError(t, err)
	assert.Equal(t, "/api/texttranslator/v1.0/documents", captured.URL.Path)
	assert.Equal(t, "ws 1", captured.URL.Query().Get("workspaceId"))
	assert.Equal(t, "1", captured.URL.Query().Get("pageIndex"))
	assert.Equal(t, "100", captured.URL.Query().Get("limit"))
}

func TestClientTranslate(t *testing.T) {
	var captured *http.Request
	var body []byte
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		captured = request
		body, _ = io.ReadAll(request.Body)
		writer.Write([]byte(`[{"translations": []}]`))
	})

	opts := TranslateOptions{From: "en", To: "de", TextType: "Plain", NoCache: true}
	result, err := client.Translate(context.Background(), "tok", "2025-05-01-preview", opts, []byte(`[{"Text": "hi"}]`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/translate", captured.URL.Path)

	query := captured.URL.Query()
	assert.Equal(t, "adaptive", query.Get("deployment"))
	assert.Equal(t, "2025-05-01-preview", query.Get("api-version"))
	assert.Equal(t, "true", query.Get("trackperformance"))
	assert.Equal(t, "experimental", query.Get("flight"))
	assert.Equal(t, "nocache", query.Get("options"))
	assert.JSONEq(t, `[{"Text": "hi"}]`, string(body))
	assert.JSONEq(t, `[{"translations": []}]`, string(result.Body))
}

func TestTranslateQueryWithoutNoCache(t *testing.T) {
	query := TranslateQuery("v1", TranslateOptions{From: "fr", To: "es", TextType: "Html"})
	assert.Equal(t, "fr", query.Get("from"))
	assert.Equal(t, "es", query.Get("to"))
	assert.Equal(t, "Html", query.Get("texttype"))
	assert.False(t, query.Has("options"))
}

func TestClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := New(&config.Config{APIURL: server.URL})
	server.Close()

	_, err := client.Workspaces(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnreachable)
}
