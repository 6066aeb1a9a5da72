package rainviewer

import "fmt"

// APIError represents a non-success HTTP status returned by the service
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// NetworkError represents a network-related error
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a discovery response body that is not valid JSON
// or does not match the expected schema
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode weather maps response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParameterError represents a validation error for request parameters
type ParameterError struct {
	Field   string
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Field, e.Message)
}
