package httpapi

import (
	"net/http"

	"github.com/oplata-app/escrow-service/internal/delivery/httpapi/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every resource handler behind the shared CORS middleware.
// Method dispatch happens inside the handlers so that unsupported methods
// get the JSON 405 body the API contract promises.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", healthHandler.Handle)
	mux.HandleFunc("/auth", authHandler.Handle)
	mux.HandleFunc("/orders", orderHandler.HandleCollection)
	mux.HandleFunc("/orders/{id}", orderHandler.HandleOrder)
	mux.HandleFunc("/orders/{id}/deliver", orderHandler.HandleDeliver)
	mux.HandleFunc("/orders/{id}/confirm", orderHandler.HandleConfirm)
	mux.HandleFunc("/orders/{id}/dispute", orderHandler.HandleDispute)
	mux.HandleFunc("/orders/{id}/history", orderHandler.HandleHistory)
	mux.HandleFunc("/payments", paymentHandler.Handle)
	mux.Handle("/metrics", promhttp.Handler())

	return corsMiddleware(mux)
}
