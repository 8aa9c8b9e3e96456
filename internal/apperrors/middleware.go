package apperrors

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"codeberg.org/atelier/server/internal/logger"
	"codeberg.org/atelier/server/internal/payments"
	"github.com/gin-gonic/gin"
)

// gin context key holding the per-request correlation id
const ContextRequestID = "request_id"

const persistTimeout = 5 * time.Second

// Handler is the single point where errors escaping a request handler are
// classified, logged, persisted, and turned into a response. It is
// constructed once in cmd/server and injected into the router; there is no
// package-level singleton.
type Handler struct {
	persister Persister
}

func NewHandler(persister Persister) *Handler {
	return &Handler{persister: persister}
}

// Middleware wraps the handler chain. It generates a fresh correlation id,
// recovers panics into errors, and classifies the first error attached to
// the gin context. Logging happens strictly before the response is written;
// persistence is fire-and-forget and never delays or fails the response.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := NewRequestID()
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}

				h.finish(c, err, string(debug.Stack()), requestID)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			h.finish(c, c.Errors[0].Err, "", requestID)
		}
	}
}

// classifies, logs, persists, and writes the response at most once
func (h *Handler) finish(c *gin.Context, err error, stack, requestID string) {
	requestContext := c.Request.Method + " " + c.FullPath()
	if c.FullPath() == "" {
		requestContext = c.Request.Method + " " + c.Request.URL.Path
	}

	rec := Classify(err, requestContext, requestID)

	LogRecord(err, requestContext, rec)

	if h.persister != nil {
		go h.persistAsync(requestContext, rec, stack)
	}

	if !c.Writer.Written() {
		c.JSON(resolveStatus(err, rec), rec.Response())
	}

	c.Abort()
}

// best-effort write to the monitoring store. Failures here are logged and
// swallowed so an observability outage cannot cascade into a second
// user-facing error.
func (h *Handler) persistAsync(requestContext string, rec *Record, stack string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("error event persistence panicked", "panic", fmt.Sprint(r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := h.persister.Persist(ctx, requestContext, rec, stack); err != nil {
		logger.ErrorErr(err, "failed to persist error event", "request_id", rec.RequestID)
	}
}

// final status precedence: a DomainError's own status, then the provider's
// transport status, then the classified record's status
func resolveStatus(err error, rec *Record) int {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.HTTPStatus != 0 {
		return domainErr.HTTPStatus
	}

	var paymentErr *payments.Error
	if errors.As(err, &paymentErr) && paymentErr.StatusCode != 0 {
		return paymentErr.StatusCode
	}

	if rec.HTTPStatus != 0 {
		return rec.HTTPStatus
	}

	return 500
}

// Abort attaches err to the gin context for the error middleware and stops
// the handler chain. Handlers use this instead of writing error bodies.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// RequestID returns the correlation id set by the middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
