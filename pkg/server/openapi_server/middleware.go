package openapi_server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
)

// RequestIDFromContext returns the request id stored by RequestIDMiddleware,
// or the empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns the request-scoped logger, or fallback if none is
// stored.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// RequestIDMiddleware takes the request id from the X-Request-Id header or
// generates one, echoes it in the response and stores it together with a
// request-scoped logger in the request context.
func RequestIDMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(HeaderXRequestID, requestID)

			ctx := context.WithValue(r.Context(), keyRequestID, requestID)
			ctx = context.WithValue(ctx, keyLogger, logger.With(slog.String("request_id", requestID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs every request once it is served. It must run after
// RequestIDMiddleware.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("uri", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", r.RemoteAddr),
		}
		if len(r.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", r.URL.RawQuery))
		}

		level := slog.LevelInfo
		if rec.status >= 400 {
			level = slog.LevelWarn
		}
		if rec.status >= 500 {
			level = slog.LevelError
		}
		LoggerFromContext(r.Context(), slog.Default()).LogAttrs(r.Context(), level, "HTTP Request", fields...)
	})
}
