// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the outbound RhoConnect sync client.
//
// A [Client] pushes created, updated and deleted objects to the remote
// service and registers callback urls. It is cheap to construct and holds
// only the resolved base uri and api token, so callers typically build one
// per operation with [New].
//
// Operations return the raw [Response]; only transport failures are
// reported as errors. Use [CheckResponse] to turn a non-2xx response into a
// [*RemoteError].
package client
