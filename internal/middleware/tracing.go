package middleware

import (
    "net/http"

    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/attribute"
    "go.opentelemetry.io/otel/trace"
)

func Tracing(next http.Handler) http.Handler {
    tracer := otel.Tracer("storefront-harness")

    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ctx, span := tracer.Start(r.Context(), r.URL.Path,
            trace.WithAttributes(attribute.String("http.method", r.Method)))
        defer span.End()

        next.ServeHTTP(w, r.WithContext(ctx))
    })
}
