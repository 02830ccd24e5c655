// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"cmp"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/platform/logging"
	"github.com/jsamuelsen/copy-census/internal/platform/telemetry"
)

const (
	// HeaderRequestID carries the per-request id.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID carries the id of a whole transaction across
	// services. It defaults to the request id.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request id.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key for the correlation id.
	ContextKeyCorrelationID = "correlation_id"
)

// RequestIDs seeds the request context with logger and assigns request and
// correlation ids:
//   - taken from the X-Request-ID and X-Correlation-ID headers when present
//   - generated as UUID v4 otherwise
//   - echoed in the response headers
//   - attached to the context logger
//
// The trace id used in error envelopes is the span's trace id when tracing
// is on, otherwise the request id.
func RequestIDs(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := cmp.Or(c.GetHeader(HeaderRequestID), uuid.NewString())
		correlationID := cmp.Or(c.GetHeader(HeaderCorrelationID), requestID)

		c.Set(ContextKeyRequestID, requestID)
		c.Set(ContextKeyCorrelationID, correlationID)
		c.Set(dto.ContextKeyTraceID, cmp.Or(telemetry.TraceID(c), requestID))

		c.Header(HeaderRequestID, requestID)
		c.Header(HeaderCorrelationID, correlationID)

		ctx := c.Request.Context()
		if logger != nil {
			ctx = logging.WithContext(ctx, logger)
		}

		ctx = logging.WithRequestIDs(ctx, requestID, correlationID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the request id, or "" outside RequestIDs.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation id, or "" outside RequestIDs.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
