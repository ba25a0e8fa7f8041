package services

import "errors"

// APIError is a service-level failure that maps directly to an HTTP status.
// Anything else that escapes a service is an internal error and must be
// surfaced to clients as a generic message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func ErrValidation(message string) *APIError {
	return &APIError{Status: 400, Message: message}
}

func ErrUnauthorized(message string) *APIError {
	return &APIError{Status: 401, Message: message}
}

func ErrForbidden(message string) *APIError {
	return &APIError{Status: 403, Message: message}
}

func ErrNotFound(message string) *APIError {
	return &APIError{Status: 404, Message: message}
}

func ErrConflict(message string) *APIError {
	return &APIError{Status: 409, Message: message}
}
