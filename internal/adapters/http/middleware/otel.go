package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/HumzahChoudry/redux-api-resources/internal/platform/telemetry"
)

const tracerName = "middleware"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the server request metrics. metrics
// may be nil.
//
// Spans start as "HTTP {method}" and are renamed to the matched chi route
// once routing is done, so entity ids never end up in span names. Requests
// against a resource carry its {name} as resource.name.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()
			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("http.request.id", id))
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			name := nameSpan(r, span)

			recordRequest(ctx, metrics, r.Method, name, status, time.Since(start))
		})
	}
}

// nameSpan renames span after the matched route and returns the {name}
// route parameter, or "" outside chi or resource routes.
func nameSpan(r *http.Request, span trace.Span) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		span.SetName("HTTP " + r.Method + " " + pattern)
		span.SetAttributes(attribute.String("http.route", pattern))
	}
	name := rctx.URLParam("name")
	if name != "" {
		span.SetAttributes(telemetry.AttrResource.String(name))
	}
	return name
}

func recordRequest(ctx context.Context, metrics *telemetry.Metrics, method, resourceName string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	kvs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	}
	if resourceName != "" {
		kvs = append(kvs, telemetry.AttrResource.String(resourceName))
	}
	attrs := metric.WithAttributes(kvs...)

	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
