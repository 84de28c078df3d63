// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rhoconnect-go/logger"
)

// Routes registers POST /authenticate, /query, /create, /update and /delete
// on r. Mount it under a prefix with chi's Route or Mount:
//
//	router.Route("/rhoconnect", func(r chi.Router) {
//		endpoint.Routes(r, helpers)
//	})
func Routes(r chi.Router, h *Helpers) {
	for _, op := range Operations() {
		r.Post("/"+string(op), CallHelper(h, op))
	}
}

// CallHelper adapts op to an [http.HandlerFunc]: it reads the body, runs the
// operation and writes the result.
func CallHelper(h *Helpers, op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("operation", string(op)).Msg("reading request body failed")
			WriteResult(w, textResult(statusFromError(err), err.Error()))
			return
		}

		WriteResult(w, h.Call(r.Context(), op, r.Header.Get("Content-Type"), body))
	}
}
