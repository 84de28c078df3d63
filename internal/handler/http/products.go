package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rhoconnect-go/internal/utils"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// appPartition is the partition used for products managed through the API.
const appPartition = "app"

type productIDResponse struct {
	ID string `json:"id"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.Query(r.Context(), appPartition)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, products, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing products")
	}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttributes(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id, err := h.services.ProductService.ReceiveCreate(r.Context(), appPartition, attrs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, productIDResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttributes(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	attrs["id"] = chi.URLParam(r, "id")

	id, err := h.services.ProductService.ReceiveUpdate(r.Context(), appPartition, attrs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, productIDResponse{ID: id}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	attrs := models.Attributes{"id": chi.URLParam(r, "id")}

	id, err := h.services.ProductService.ReceiveDelete(r.Context(), appPartition, attrs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, productIDResponse{ID: id}, http.StatusOK)
}

func decodeAttributes(r *http.Request) (models.Attributes, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var attrs models.Attributes
	if err := dec.Decode(&attrs); err != nil {
		return nil, ErrInvalidJSON
	}
	if attrs == nil {
		return nil, ErrInvalidJSON
	}
	return attrs, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	_, _ = utils.WriteError(w, message, status)
}
