// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package endpoint serves the inbound half of the RhoConnect integration:
// the authenticate, query, create, update and delete requests the backend
// sends to the application.
//
// [Helpers] holds the framework independent core. Each operation takes the
// request content type and body and returns a [models.Result]. Two adapters
// sit on top of it:
//
//   - standalone net/http handlers ([NewQueryHandler] and friends) that can
//     be mounted on any mux;
//   - [Routes], which registers all five operations on a chi router.
//
// Status mapping: 200 on success, 401 when the configured authenticate
// callback rejects the credentials, 404 for an unknown resource or one that
// lacks the needed contract method, and 500 with the error message as plain
// text for everything else.
package endpoint
