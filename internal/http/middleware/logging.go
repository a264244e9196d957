// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides the request ID injector, the structured access logger,
// and a panic-safe recovery handler:
//
//   - RequestID() ensures every request carries a correlation ID
//     (propagated via X-Request-ID and stored in the Gin context).
//   - Logger() emits one scrubbed access log entry per request and attaches a
//     request-scoped zerolog.Logger to both the Gin context and the request's
//     context.Context, so services can use zerolog.Ctx(ctx).
//   - Recovery() converts panics into JSON 500 responses in the standard
//     error envelope.
//
// Recommended order: RequestID(), Logger(), Recovery().
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key under which the request ID is stored.
	requestIDKey = "requestID"
	// requestIDHeader is the HTTP header used to propagate the correlation ID.
	requestIDHeader = "X-Request-ID"
	// loggerKey is the Gin context key of the request-scoped logger.
	loggerKey = "logger"
	// maxQueryLogLength caps the number of bytes of the raw query string logged.
	maxQueryLogLength = 2048
)

// RequestID attaches (or propagates) a correlation identifier per request.
// An incoming X-Request-ID is reused; otherwise a UUIDv4 is generated. The
// ID is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger writes a structured access log for each request.
//
// Fields: request_id, method, path (route pattern when matched), remote_ip,
// user_agent, scrubbed query, bytes_in, status, latency, bytes_out and the
// scrubbed request headers. Level is error for 5xx or when Gin collected
// errors, warn for 4xx, info otherwise.
func Logger(opts RedactOptions) gin.HandlerFunc {
	red := newRedactor(opts)

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		headers := red.headers(c.Request.Header)

		l := log.With().
			Str("request_id", requestIDOf(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(red.scrub(c.Request.URL.RawQuery), maxQueryLogLength)).
			// ContentLength can be -1 if unknown.
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set(loggerKey, &l)
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()

		ev := l.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Interface("headers", headers).
			Logger()

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// Recovery intercepts panics, logs a stack trace, and returns a JSON 500:
//
//	{ "request_id": "...", "error": "InternalServerError", "message": "internal server error" }
//
// If the handler already wrote a response, only the status is aborted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid := requestIDOf(c)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", rid).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header(requestIDHeader, rid)
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"request_id": rid,
						"error":      "InternalServerError",
						"message":    "internal server error",
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped zerolog.Logger, or a plain logger
// without request fields when Logger() is not installed.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// requestIDOf prefers the ID stored by RequestID, then the response header,
// then the inbound header.
func requestIDOf(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s := asString(v); s != "" {
			return s
		}
	}
	if rid := c.Writer.Header().Get(requestIDHeader); rid != "" {
		return rid
	}
	return c.GetHeader(requestIDHeader)
}

// asString converts an arbitrary interface to a string, returning an empty
// string when the value is not a string.
func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// truncate caps s at max bytes and appends an ellipsis. A max <= 0 disables
// truncation.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
