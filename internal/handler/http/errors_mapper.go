package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rhoconnect-go/internal/service"
	"github.com/MKhiriev/rhoconnect-go/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidProductID:         http.StatusBadRequest,
	service.ErrValidationProductInvalid: http.StatusBadRequest,
	service.ErrWrongPassword:            http.StatusUnauthorized,

	store.ErrProductNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound:  http.StatusNotFound,

	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrExecutingStatment: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
