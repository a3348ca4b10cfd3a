// Package upstream implements the HTTP client talking to the remote translation platform.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/skybi/translation-portal/internal/config"
	"golang.org/x/oauth2"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RoutePrefix is the versioned route prefix every platform endpoint lives under
const RoutePrefix = "/api/texttranslator/v1.0"

// ErrUnreachable is returned whenever the platform could not be reached or its response could not be read
var ErrUnreachable = errors.New("translation platform unreachable")

// Client issues requests against the translation platform.
// It neither retries nor refreshes tokens; the bearer token is forwarded as-is, even if it is empty.
type Client struct {
	HTTP *http.Client

	baseURL        string
	translatorURL  string
	subscriptionID string
	region         string
	llmEndpoint    string
	llmKey         string
}

// New creates a new platform client using the process configuration
func New(cfg *config.Config) *Client {
	return &Client{
		HTTP:           http.DefaultClient,
		baseURL:        strings.TrimRight(cfg.APIURL, "/") + RoutePrefix,
		translatorURL:  cfg.TranslatorURL,
		subscriptionID: cfg.TranslationKey,
		region:         cfg.Region,
		llmEndpoint:    cfg.GPTURL,
		llmKey:         cfg.GPTKey,
	}
}

// Request describes a single call to the platform
type Request struct {
	Method string
	// Path is appended to the API base URL; ignored if URL is set
	Path string
	// URL overrides the target URL entirely (used for the translator endpoint)
	URL         string
	Query       url.Values
	Token       string
	Body        io.Reader
	ContentType string
}

// Do executes a request and reads the complete response body
func (client *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	target := req.URL
	if target == "" {
		target = client.baseURL + req.Path
	}
	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target += separator + req.Query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, req.Method, target, req.Body)
	if err != nil {
		return nil, err
	}
	client.authorize(request, req.Token)
	if req.ContentType != "" {
		request.Header.Set("Content-Type", req.ContentType)
	}

	requestID := uuid.NewString()
	request.Header.Set("X-Request-ID", requestID)
	log.Debug().Str("request_id", requestID).Str("method", req.Method).Str("url", target).Msg("calling translation platform")

	response, err := client.HTTP.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, req.Method, target, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response of %s %s: %v", ErrUnreachable, req.Method, target, err)
	}
	log.Debug().Str("request_id", requestID).Int("status", response.StatusCode).Int("bytes", len(body)).Msg("translation platform responded")

	return &Result{
		Status: response.StatusCode,
		Body:   body,
	}, nil
}

// authorize attaches the bearer token as well as the translation service subscription and LLM headers
func (client *Client) authorize(request *http.Request, token string) {
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(request)
	request.Header.Set("Ocp-Apim-Subscription-Key", client.subscriptionID)
	request.Header.Set("Ocp-Apim-Subscription-Region", client.region)
	request.Header.Set("llm-endpoint", client.llmEndpoint)
	request.Header.Set("llm-key", client.llmKey)
	request.Header.Set("preview-api", "true")
}

// Get issues a GET request against a platform path
func (client *Client) Get(ctx context.Context, token, path string, query url.Values) (*Result, error) {
	return client.Do(ctx, &Request{
		Method:      http.MethodGet,
		Path:        path,
		Query:       query,
		Token:       token,
		ContentType: "application/json",
	})
}

// Delete issues a DELETE request against a platform path
func (client *Client) Delete(ctx context.Context, token, path string) (*Result, error) {
	return client.Do(ctx, &Request{
		Method:      http.MethodDelete,
		Path:        path,
		Token:       token,
		ContentType: "application/json",
	})
}

// PostJSON issues a POST request with a JSON body against a platform path
func (client *Client) PostJSON(ctx context.Context, token, path string, query url.Values, body []byte) (*Result, error) {
	return client.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Query:       query,
		Token:       token,
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
	})
}

// PostMultipart issues a POST request with an already encoded multipart body against a platform path
func (client *Client) PostMultipart(ctx context.Context, token, path string, query url.Values, body io.Reader, contentType string) (*Result, error) {
	return client.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Query:       query,
		Token:       token,
		Body:        body,
		ContentType: contentType,
	})
}
