// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource integrates host application models with RhoConnect.
//
// Two halves live here:
//
//   - the [Registry], which maps the resource names the backend sends to
//     host-supplied values implementing the contract interfaces ([Querier],
//     [CreateReceiver], [UpdateReceiver], [DeleteReceiver]); the endpoint
//     package dispatches inbound requests through it;
//   - the [Observer], which host applications attach their model types to.
//     After create, update and destroy it serializes the model and pushes it
//     through the sync client. Sync failures are reported as warnings and are
//     never returned to the caller, so a failed sync cannot fail a save.
//
// Two model families are supported. gorm models are detected by parsing their
// schema (a primary key is required); hooks fire from gorm callbacks once
// [Observer.AttachGORM] has been called. Plain types opt in by implementing
// [Record] and must also implement [Serializer]; their hooks are invoked
// explicitly with [Observer.AfterCreate], [Observer.AfterUpdate] and
// [Observer.AfterDestroy].
package resource
