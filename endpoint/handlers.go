package endpoint

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/rhoconnect-go/models"
)

// MaxBodyBytes bounds the request body read by the HTTP adapters.
const MaxBodyBytes = 10 << 20

// Handler returns a net/http handler running op.
func (h *Helpers) Handler(op Operation) http.Handler {
	return CallHelper(h, op)
}

func NewAuthenticateHandler(h *Helpers) http.Handler { return h.Handler(OpAuthenticate) }

func NewQueryHandler(h *Helpers) http.Handler { return h.Handler(OpQuery) }

func NewCreateHandler(h *Helpers) http.Handler { return h.Handler(OpCreate) }

func NewUpdateHandler(h *Helpers) http.Handler { return h.Handler(OpUpdate) }

func NewDeleteHandler(h *Helpers) http.Handler { return h.Handler(OpDelete) }

// WriteResult writes res as the response: status, Content-Type and body.
func WriteResult(w http.ResponseWriter, res models.Result) {
	w.Header().Set("Content-Type", res.ContentType)
	w.WriteHeader(res.Status)
	_, _ = io.WriteString(w, res.Body)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return body, nil
}
