package client

import (
	"net/http"
	"strings"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// CheckResponse returns nil for 2xx responses and a [*RemoteError] otherwise.
func CheckResponse(resp *Response) error {
	if resp == nil {
		return nil
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &RemoteError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(resp.Body)),
		err:        sentinel,
	}
}
