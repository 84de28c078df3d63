// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks product attributes received from RhoConnect
// devices and the product API before they reach the store.
//
// Updates carry only the changed attributes, so validators accept the list of
// fields to check. An empty list means every writable field.
package validators

import "context"

// Validator validates value, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
