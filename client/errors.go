// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidArgument is wrapped by every construction and argument
	// validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrURIRequired     = errors.New("uri is required (provide a uri or set RHOCONNECT_URL)")
	ErrTokenRequired   = errors.New("token is required (provide a token or set it in uri)")
	ErrMissingObjectID = errors.New("missing object id")
)

// Status sentinels wrapped by [RemoteError] so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// RemoteError reports a non-2xx answer from the RhoConnect service.
type RemoteError struct {
	StatusCode int
	Body       string

	err error
}

// Error renders "<status text> - <body>", e.g.
// "Internal Server Error - error connecting to server".
func (e *RemoteError) Error() string {
	return http.StatusText(e.StatusCode) + " - " + e.Body
}

func (e *RemoteError) Unwrap() error {
	return e.err
}
