package schema

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

var (
	ErrRequestBodyInvalidJSON = &Error{
		Message: "Request body is not a valid JSON input",
	}
	ErrRequestBodyNotAnObject = &Error{
		Message: "Request body has to be a JSON object",
	}
)

// ReadJSONBody reads the request body and makes sure it is valid JSON.
// The returned *Error is set if the body is malformed; the error if it could not be read at all.
func ReadJSONBody(request *http.Request) (json.RawMessage, *Error, error) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, nil, err
	}
	if !json.Valid(body) {
		return nil, ErrRequestBodyInvalidJSON, nil
	}
	return body, nil, nil
}

// UnmarshalObject decodes raw JSON into a generic object, keeping numbers as json.Number so they
// survive being forwarded unchanged
func UnmarshalObject(raw []byte) (map[string]any, *Error) {
	var decoded any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&decoded); err != nil {
		return nil, ErrRequestBodyInvalidJSON
	}
	target, ok := decoded.(map[string]any)
	if !ok {
		return nil, ErrRequestBodyNotAnObject
	}
	return target, nil
}
