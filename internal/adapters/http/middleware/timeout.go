package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
)

// Timeout bounds each request with a deadline carried on its context. Store
// operations return promptly and refresh calls observe the context, so the
// handler runs inline; when it returns past the deadline without having
// written anything, a 504 problem response is sent on its behalf.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !wroteHeader(ww) {
				dto.WriteErrorResponse(ww, r, context.DeadlineExceeded)
			}
		})
	}
}
