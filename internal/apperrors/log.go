package apperrors

import (
	"codeberg.org/atelier/server/internal/logger"
)

// kinds logged at warning level; everything else is an error
var warnKinds = map[Kind]bool{
	KindValidation:     true,
	KindNotFound:       true,
	KindAuthentication: true,
	KindAuthorization:  true,
	KindRateLimit:      true,
}

// LogRecord emits one structured log line for a classified error. Severity
// is routed by kind: expected client-side failures log as warnings, provider
// and internal failures as errors. Logging never fails the caller.
func LogRecord(err error, requestContext string, rec *Record) {
	args := []any{
		"context", requestContext,
		"kind", string(rec.Kind),
		"message", rec.Message,
		"status", rec.HTTPStatus,
	}

	if rec.Code != "" {
		args = append(args, "code", rec.Code)
	}

	if rec.RequestID != "" {
		args = append(args, "request_id", rec.RequestID)
	}

	if rec.Details != nil {
		args = append(args, "details", rec.Details)
	}

	if err != nil {
		args = append(args, "error", err)
	}

	if warnKinds[rec.Kind] {
		logger.Warn("request failed", args...)
		return
	}

	logger.Error("request failed", args...)
}
