// Package middleware holds the inbound request pipeline installed on the chi
// router:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler passed to Router.Use.
package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// wrap returns a status-capturing writer, reusing w when an outer middleware
// already wrapped it.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status sent through ww. A handler that never wrote
// anything produced an implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// wroteHeader reports whether a status line has gone out on ww.
func wroteHeader(ww chimw.WrapResponseWriter) bool {
	return ww.Status() != 0
}
