package apperrors

import (
	"context"
	"fmt"
	"time"
)

// Kind classifies an error into one of the fixed taxonomy categories.
// The kind drives the HTTP status, the response category label, and the
// log severity.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindPaymentProvider  Kind = "PAYMENT_PROVIDER"
	KindShippingProvider Kind = "SHIPPING_PROVIDER"
	KindStorage          Kind = "STORAGE"
	KindAuthentication   Kind = "AUTHENTICATION"
	KindAuthorization    Kind = "AUTHORIZATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindRateLimit        Kind = "RATE_LIMIT"
	KindInternal         Kind = "INTERNAL"
)

// category labels for the "error" field of the response body
var kindLabels = map[Kind]string{
	KindValidation:       "Validation error",
	KindPaymentProvider:  "Stripe error",
	KindShippingProvider: "Shipping error",
	KindStorage:          "Database error",
	KindAuthentication:   "Authentication error",
	KindAuthorization:    "Authorization error",
	KindNotFound:         "Not found",
	KindRateLimit:        "Rate limit exceeded",
	KindInternal:         "Internal server error",
}

// Label returns the human category label for a kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}

	return kindLabels[KindInternal]
}

// Record is the normalized result of classifying a caught error. It is
// created once per error, never mutated, and read by the logger, the
// persister, and the HTTP response writer.
type Record struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Code       string
	Details    map[string]any
	Timestamp  time.Time
	RequestID  string
}

// Response is the JSON error body returned to clients.
type Response struct {
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Code      string         `json:"code,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp string         `json:"timestamp"`
	RequestID string         `json:"requestId,omitempty"`
}

// Response builds the client-facing body for a record.
func (r *Record) Response() Response {
	return Response{
		Error:     r.Kind.Label(),
		Message:   r.Message,
		Type:      string(r.Kind),
		Code:      r.Code,
		Details:   r.Details,
		Timestamp: r.Timestamp.Format(time.RFC3339Nano),
		RequestID: r.RequestID,
	}
}

// Persister writes classified error records to the monitoring store.
// Implementations must treat writes as append-only and independent.
type Persister interface {
	Persist(ctx context.Context, requestContext string, rec *Record, stack string) error
}

// StorageError is the document-database error shape. Repositories translate
// driver errors into one of the fixed codes; the classifier dispatches on
// the code instead of inspecting driver types.
type StorageError struct {
	Code string // one of the codes in storageCodeSet
	Op   string // the repository operation, e.g. "products.Get"
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage %s (%s): %v", e.Code, e.Op, e.Err)
	}

	return fmt.Sprintf("storage %s (%s)", e.Code, e.Op)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps a driver error with a storage code and operation.
func NewStorageError(code, op string, err error) *StorageError {
	return &StorageError{Code: code, Op: op, Err: err}
}
