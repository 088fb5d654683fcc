package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"paintbid/internal/estimate"
	"paintbid/internal/handlers"
	"paintbid/internal/observability"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	// The form page doubles as the landing page.
	r.Get("/", estimate.NewBidForm)

	estimate.RegisterRoutes(r)

	return r
}
