package apperrors

import "net/http"

// DomainError is an intentionally raised, already-classified error. It is
// created by validators and business logic and consumed by the classifier,
// which copies its fields verbatim into the record.
type DomainError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Code       string
	Details    map[string]any
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError. A zero status defaults to 500.
func NewDomainError(kind Kind, message string, status int) *DomainError {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return &DomainError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: status,
	}
}

// WithCode returns a copy with a machine-readable sub-code set.
func (e *DomainError) WithCode(code string) *DomainError {
	cp := *e
	cp.Code = code

	return &cp
}

// WithDetails returns a copy with a structured details payload set.
func (e *DomainError) WithDetails(details map[string]any) *DomainError {
	cp := *e
	cp.Details = details

	return &cp
}

// common constructors used across handlers and services

// NotFound builds a 404 error for a missing resource.
func NotFound(resource string) *DomainError {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	return NewDomainError(KindNotFound, message, http.StatusNotFound)
}

// Unauthorized builds a 401 authentication error.
func Unauthorized(message string) *DomainError {
	if message == "" {
		message = "authentication required"
	}

	return NewDomainError(KindAuthentication, message, http.StatusUnauthorized)
}

// Forbidden builds a 403 authorization error.
func Forbidden(message string) *DomainError {
	if message == "" {
		message = "permission denied"
	}

	return NewDomainError(KindAuthorization, message, http.StatusForbidden)
}

// RateLimited builds a 429 rate-limit error.
func RateLimited(message string) *DomainError {
	if message == "" {
		message = "too many requests"
	}

	return NewDomainError(KindRateLimit, message, http.StatusTooManyRequests)
}

// Validation builds a 400 validation error.
func Validation(message string) *DomainError {
	return NewDomainError(KindValidation, message, http.StatusBadRequest)
}
