package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/HumzahChoudry/redux-api-resources/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging stores a request-scoped logger carrying the request and correlation
// IDs in the context, then logs the request start and its completion with
// status, duration, the matched chi route and the addressed resource. Request
// headers are logged at debug level with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", statusOf(ww)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}
				if name := rctx.URLParam("name"); name != "" {
					attrs = append(attrs, slog.String("resource", name))
				}
			}
			child.InfoContext(ctx, "request completed", attrs...)
		})
	}
}

// headerAttrs renders headers as slog attributes in name order. Sensitive
// values are replaced and multi-value headers are comma joined.
func headerAttrs(h http.Header) []any {
	names := slices.Sorted(maps.Keys(h))

	attrs := make([]any, 0, len(names))
	for _, k := range names {
		v := strings.Join(h[k], ",")
		if logging.IsSensitiveHeader(k) {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}
