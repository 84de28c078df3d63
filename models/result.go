// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the framework-agnostic outcome of an endpoint helper: the status
// code, the response content type and the raw body. Transport shims copy it
// onto their own response types.
type Result struct {
	// Status is the HTTP status code (200, 401, 404 or 500).
	Status int

	// ContentType is either "text/plain" or "application/json".
	ContentType string

	// Body is the response payload. It is empty for authenticate results.
	Body string
}
