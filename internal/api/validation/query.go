package validation

import (
	"github.com/skybi/translation-portal/internal/api/schema"
	"net/http"
	"strings"
)

// QueryString extracts a string value out of the query parameters of the given request.
// If the parameter is required but absent or blank, a missing parameter error naming it is returned.
func QueryString(request *http.Request, key string, required bool, def string) (string, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		if required {
			return "", schema.ErrMissingParameter(key)
		}
		return def, nil
	}
	return value, nil
}
