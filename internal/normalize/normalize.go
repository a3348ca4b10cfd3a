// Package normalize reshapes the inconsistently structured JSON returned by the translation platform into the
// stable document and index schema the web client works with.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEntry is returned if an upstream list entry does not match the expected schema
var ErrMalformedEntry = errors.New("malformed upstream entry")

// Status represents the availability of a document or index
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusUnavailable Status = "Unavailable"
)

// availability is the upstream 'isAvailable' flag.
// An absent flag counts as available, an explicit null as unavailable.
type availability struct {
	set   bool
	value bool
}

// UnmarshalJSON implements json.Unmarshaler
func (flag *availability) UnmarshalJSON(data []byte) error {
	flag.set = true
	if bytes.Equal(data, []byte("null")) {
		flag.value = false
		return nil
	}
	return json.Unmarshal(data, &flag.value)
}

func (flag availability) status() Status {
	if flag.set && !flag.value {
		return StatusUnavailable
	}
	return StatusAvailable
}

// ID is an upstream identifier which may be encoded either as a JSON string or as a JSON number
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*id = ID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %s", data)
	}
	*id = ID(num.String())
	return nil
}

func orDefault[T ~string](val *T, def string) string {
	if val == nil {
		return def
	}
	return string(*val)
}

// entries extracts the list of raw entries out of an upstream payload.
// If the payload is an object, listOf is consulted to find the nested list; if it does not find one, the object
// itself is treated as the only entry. A top-level array is used as-is.
func entries(payload []byte, listOf func(obj map[string]json.RawMessage) ([]json.RawMessage, bool)) ([]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, nil
	}

	switch payload[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(payload, &obj); err != nil {
			return nil, err
		}
		if list, ok := listOf(obj); ok {
			return list, nil
		}
		if len(obj) == 0 {
			return nil, nil
		}
		return []json.RawMessage{payload}, nil
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(payload, &list); err != nil {
			return nil, err
		}
		return list, nil
	default:
		if !json.Valid(payload) {
			return nil, errors.New("payload is not valid JSON")
		}
		return nil, nil
	}
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
