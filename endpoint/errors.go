package endpoint

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rhoconnect-go/resource"
)

var (
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrMalformedBody     = errors.New("malformed request body")
	ErrDuplicateObjectID = errors.New("duplicate object id")
)

var errorStatusMap = map[error]int{
	resource.ErrMissingResource: http.StatusNotFound,
	resource.ErrMissingMethod:   http.StatusNotFound,
	ErrUnknownOperation:         http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError renders the plain-text body for a failed request.
func messageFromError(err error, resourceName string) string {
	if errors.Is(err, resource.ErrMissingResource) {
		return "Missing Resource " + resourceName
	}
	return err.Error()
}
