package upstream

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
)

// TranslateOptions holds the caller-supplied translation parameters
type TranslateOptions struct {
	From     string
	To       string
	TextType string
	NoCache  bool
}

// Translate forwards a JSON translation request to the translator endpoint.
// api-version, trackperformance and flight are fixed; the remaining parameters come from opts.
func (client *Client) Translate(ctx context.Context, token, apiVersion string, opts TranslateOptions, body []byte) (*Result, error) {
	return client.Do(ctx, &Request{
		Method:      http.MethodPost,
		URL:         client.translatorURL,
		Query:       TranslateQuery(apiVersion, opts),
		Token:       token,
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
	})
}

// TranslateQuery builds the query parameters of a translation request
func TranslateQuery(apiVersion string, opts TranslateOptions) url.Values {
	query := url.Values{
		"api-version":      {apiVersion},
		"trackperformance": {"true"},
		"flight":           {"experimental"},
		"from":             {opts.From},
		"to":               {opts.To},
		"texttype":         {opts.TextType},
	}
	if opts.NoCache {
		query.Set("options", "nocache")
	}
	return query
}
