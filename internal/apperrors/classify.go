package apperrors

import (
	"errors"
	"net/http"
	"time"

	"codeberg.org/atelier/server/internal/payments"
	"codeberg.org/atelier/server/internal/shipping"
)

// mapping table for payment-provider sub-types. Sub-types not listed here
// fall through to a 400 that passes the provider's own message along, since
// provider validation messages are already user-safe.
var paymentTable = map[string]struct {
	status  int
	kind    Kind
	message string
}{
	payments.ErrTypeCard: {
		http.StatusPaymentRequired, KindPaymentProvider,
		"Your card was declined.",
	},
	payments.ErrTypeRateLimit: {
		http.StatusTooManyRequests, KindRateLimit,
		"Too many requests made to the payment API too quickly.",
	},
	payments.ErrTypeInvalidRequest: {
		http.StatusBadRequest, KindPaymentProvider,
		"Invalid parameters were supplied to the payment API.",
	},
	payments.ErrTypeAPI: {
		http.StatusInternalServerError, KindPaymentProvider,
		"An error occurred internally with the payment API.",
	},
	payments.ErrTypeConnection: {
		http.StatusBadGateway, KindPaymentProvider,
		"A network error occurred during HTTPS communication with the payment provider.",
	},
	payments.ErrTypeAuthentication: {
		http.StatusUnauthorized, KindAuthentication,
		"The payment provider rejected the request. Check that valid API credentials are configured.",
	},
}

// the fixed set of recognized document-database error codes
var storageCodeSet = map[string]bool{
	"permission-denied":   true,
	"not-found":           true,
	"already-exists":      true,
	"resource-exhausted":  true,
	"failed-precondition": true,
	"aborted":             true,
	"unavailable":         true,
	"data-loss":           true,
}

// mapping table for storage codes. Codes in the recognized set without an
// entry here (data-loss) fall back to a generic 500.
var storageTable = map[string]struct {
	status  int
	message string
}{
	"permission-denied":   {http.StatusForbidden, "You do not have permission to access this resource."},
	"not-found":           {http.StatusNotFound, "The requested resource was not found."},
	"already-exists":      {http.StatusConflict, "The resource already exists."},
	"resource-exhausted":  {http.StatusTooManyRequests, "Resource limits exceeded. Please try again later."},
	"failed-precondition": {http.StatusBadRequest, "The operation was rejected because the system is not in the required state."},
	"aborted":             {http.StatusConflict, "The operation was aborted due to a conflict. Please retry."},
	"unavailable":         {http.StatusServiceUnavailable, "The service is temporarily unavailable. Please try again later."},
}

// Classify inspects a caught error and produces exactly one Record. The
// branches are ranked: an intentionally raised DomainError wins, then
// provider and storage errors identified by their tagged types, then a safe
// generic fallback that never leaks internals.
func Classify(err error, requestContext, requestID string) *Record {
	rec := &Record{
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		rec.Kind = domainErr.Kind
		rec.Message = domainErr.Message
		rec.HTTPStatus = domainErr.HTTPStatus
		rec.Code = domainErr.Code
		rec.Details = domainErr.Details

		return rec
	}

	var paymentErr *payments.Error
	if errors.As(err, &paymentErr) {
		classifyPayment(rec, paymentErr)
		return rec
	}

	var storageErr *StorageError
	if errors.As(err, &storageErr) && storageCodeSet[storageErr.Code] {
		classifyStorage(rec, storageErr)
		return rec
	}

	var shippingErr *shipping.Error
	if errors.As(err, &shippingErr) {
		classifyShipping(rec, shippingErr)
		return rec
	}

	rec.Kind = KindInternal
	rec.HTTPStatus = http.StatusInternalServerError

	if err != nil {
		rec.Message = err.Error()
	} else {
		rec.Message = "Unknown error occurred"
	}

	return rec
}

func classifyPayment(rec *Record, err *payments.Error) {
	details := map[string]any{"stripeType": err.Type}

	if err.Param != "" {
		details["param"] = err.Param
	}

	if err.DeclineCode != "" {
		details["declineCode"] = err.DeclineCode
	}

	rec.Code = err.Code
	rec.Details = details

	if entry, ok := paymentTable[err.Type]; ok {
		rec.Kind = entry.kind
		rec.HTTPStatus = entry.status
		rec.Message = entry.message

		return
	}

	// provider-level validation message, already user-safe
	rec.Kind = KindPaymentProvider
	rec.HTTPStatus = http.StatusBadRequest
	rec.Message = err.Message
}

func classifyStorage(rec *Record, err *StorageError) {
	rec.Kind = KindStorage

	details := map[string]any{"storageCode": err.Code}
	if err.Op != "" {
		details["op"] = err.Op
	}

	rec.Details = details

	if entry, ok := storageTable[err.Code]; ok {
		rec.HTTPStatus = entry.status
		rec.Message = entry.message

		return
	}

	rec.HTTPStatus = http.StatusInternalServerError
	rec.Message = "Unknown database error"
}

func classifyShipping(rec *Record, err *shipping.Error) {
	rec.Kind = KindShippingProvider
	rec.Details = map[string]any{"providerStatus": err.Status}

	// provider validation responses carry user-safe messages
	if err.Status == http.StatusUnprocessableEntity || err.Status == http.StatusBadRequest {
		rec.HTTPStatus = http.StatusBadRequest
		rec.Message = err.Message

		return
	}

	rec.HTTPStatus = http.StatusBadGateway
	rec.Message = "The shipping provider could not be reached. Please try again later."
}
