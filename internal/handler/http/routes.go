package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/rhoconnect-go/endpoint"
)

// RhoConnectPrefix is where the endpoint helpers are mounted. The callback
// urls registered with RhoConnect are built from it.
const RhoConnectPrefix = "/rhoconnect"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	router.Route(RhoConnectPrefix, func(r chi.Router) {
		endpoint.Routes(r, h.helpers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
