package upstream

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultParse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind Kind
	}{
		{name: "empty", body: "", wantKind: KindEmpty},
		{name: "whitespace", body: " \n", wantKind: KindEmpty},
		{name: "object", body: `{"id": "1"}`, wantKind: KindJSON},
		{name: "array", body: `[]`, wantKind: KindJSON},
		{name: "html", body: "<html>oops</html>", wantKind: KindNonJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := (&Result{Status: http.StatusTeapot, Body: []byte(tt.body)}).Parse()
			assert.Equal(t, tt.wantKind, parsed.Kind)
			assert.Equal(t, http.StatusTeapot, parsed.Status)
			if tt.wantKind == KindNonJSON {
				assert.Equal(t, tt.body, parsed.Raw)
			}
		})
	}
}
