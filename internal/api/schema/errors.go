package schema

import "fmt"

var (
	ErrInternal = &Error{
		Message: "Internal error",
	}
	ErrNotFound = &Error{
		Message: "Resource not found",
	}
	ErrMethodNotAllowed = &Error{
		Message: "Method not allowed",
	}
	ErrUnauthenticated = &Error{
		Message: "Not authenticated",
	}
	ErrUpstreamUnavailable = &Error{
		Message: "Upstream request failed",
	}
	ErrUpstreamEmpty = &Error{
		Message: "No data returned from API",
	}
	ErrMissingParameters = &Error{
		Message: "Missing required parameters",
	}
	ErrInvalidDocumentDetails = &Error{
		Message: "Invalid DocumentDetails format",
	}
	ErrMissingIndexDetails = &Error{
		Message: "Missing IndexDetails",
	}
	ErrInvalidIndexDetails = &Error{
		Message: "Invalid IndexDetails format",
	}
	ErrUpstreamInvalidJSON = func(raw string) *Error {
		return &Error{
			Message: "Invalid JSON response from backend",
			Raw:     raw,
		}
	}
	ErrMissingParameter = func(name string) *Error {
		return &Error{
			Message: fmt.Sprintf("%s parameter is required", name),
		}
	}
	ErrMissingField = func(name string) *Error {
		return &Error{
			Message: fmt.Sprintf("Missing required field: %s", name),
		}
	}
)

// Error represents the response structure sent by the portal whenever an error occurred.
// Raw carries the unparsable upstream body if the error originates from it.
type Error struct {
	Message string `json:"error"`
	Raw     string `json:"raw,omitempty"`
}

// Error implements the error interface
func (err *Error) Error() string {
	return err.Message
}
