package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// Acima disso a requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição com um ID de correlação.
// Em desenvolvimento o pacote log já descarta os campos extras.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"remote_addr":    r.RemoteAddr,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Debug("→ Requisição iniciada")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("%s %s concluída em %s", r.Method, r.URL.Path, formatDuration(elapsed))
			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error("✗ " + msg)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn("✗ " + msg)
			default:
				logger.Info("✓ " + msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, elapsed.Milliseconds())
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma panics em 500 e registra o stack trace
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"error":       fmt.Sprint(err),
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(debug.Stack()),
					}).Errorf("❌ PANIC em %s %s: %v", r.Method, r.URL.Path, err)

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
