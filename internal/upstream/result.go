package upstream

import (
	"bytes"
	"encoding/json"
)

// Kind classifies the body of a platform response
type Kind int

const (
	// KindJSON means the body is a valid JSON document
	KindJSON Kind = iota
	// KindEmpty means the body is empty
	KindEmpty
	// KindNonJSON means the body is not empty but no valid JSON either
	KindNonJSON
)

// Result represents a raw platform response
type Result struct {
	Status int
	Body   []byte
}

// Parsed is the outcome of classifying a Result's body.
// Callers have to switch on Kind before using the body.
type Parsed struct {
	Kind   Kind
	Status int
	JSON   json.RawMessage
	Raw    string
}

// Parse classifies the response body
func (result *Result) Parse() *Parsed {
	parsed := &Parsed{Status: result.Status}
	trimmed := bytes.TrimSpace(result.Body)
	switch {
	case len(trimmed) == 0:
		parsed.Kind = KindEmpty
	case json.Valid(trimmed):
		parsed.Kind = KindJSON
		parsed.JSON = trimmed
	default:
		parsed.Kind = KindNonJSON
		parsed.Raw = string(result.Body)
	}
	return parsed
}
