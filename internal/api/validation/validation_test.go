package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryString(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?workspaceId=ws-1&blank=%20", nil)

	value, err := QueryString(request, "workspaceId", true, "")
	assert.Nil(t, err)
	assert.Equal(t, "ws-1", value)

	_, err = QueryString(request, "blank", true, "")
	if assert.NotNil(t, err) {
		assert.Equal(t, "blank parameter is required", err.Message)
	}

	value, err = QueryString(request, "from", false, "en")
	assert.Nil(t, err)
	assert.Equal(t, "en", value)
}

func TestRequireKeys(t *testing.T) {
	obj := map[string]any{"name": "idx", "sourceLanguage": "en"}

	assert.Nil(t, RequireKeys(obj, "name", "sourceLanguage"))

	err := RequireKeys(obj, "name", "sourceLanguage", "targetLanguage")
	if assert.NotNil(t, err) {
		assert.Equal(t, "Missing required field: targetLanguage", err.Message)
	}
}
