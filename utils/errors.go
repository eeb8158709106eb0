package utils

import "net/http"

// FieldError is one entry of a 422 validation response.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// HTTPError is a domain error that already knows the status it maps to.
// The boundary layer serializes it as {status, message, errors?}.
type HTTPError struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func NewValidationError(errors []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation error",
		Errors:  errors,
	}
}

func NewNotFound(message string) *HTTPError {
	if message == "" {
		message = "Not found"
	}
	return NewHTTPError(http.StatusNotFound, message)
}

func NewBadRequest(message string) *HTTPError {
	if message == "" {
		message = "Bad request"
	}
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewUnauthenticated(message string) *HTTPError {
	if message == "" {
		message = "Unauthenticated"
	}
	return NewHTTPError(http.StatusUnauthorized, message)
}

func NewBadCredentials(message string) *HTTPError {
	if message == "" {
		message = "Bad credentials"
	}
	return NewHTTPError(http.StatusUnauthorized, message)
}

func NewUnauthorized(message string) *HTTPError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewHTTPError(http.StatusForbidden, message)
}

func NewInternalServerError() *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
