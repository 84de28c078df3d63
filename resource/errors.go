// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedModel is returned by [Observer.Track] when a model is
	// neither a gorm model nor a [Record].
	ErrUnsupportedModel = errors.New("resource observer only supports gorm models or resource.Record types at this time")

	// ErrSerializerMissing is returned by [Observer.Track] for a [Record]
	// that does not implement [Serializer].
	ErrSerializerMissing = errors.New("resource observer requires a serializer to work with records")

	// ErrMissingResource is returned when no resource is registered under a
	// requested name.
	ErrMissingResource = errors.New("missing resource")

	// ErrMissingMethod is wrapped by [MissingMethodError].
	ErrMissingMethod = errors.New("missing contract method")

	ErrEmptyName          = errors.New("resource name is empty")
	ErrNilResource        = errors.New("resource is nil")
	ErrAlreadyRegistered  = errors.New("resource is already registered")
	ErrNotTracked         = errors.New("model type is not tracked")
	ErrUnsupportedObject  = errors.New("object cannot be serialized")
	ErrObserverNotStarted = errors.New("observer has no client factory")
	ErrHookPanicked       = errors.New("hook panicked")
)

// MissingMethodError reports a registered resource lacking the contract
// method a request needs.
type MissingMethodError struct {
	Resource string
	Method   string
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("error on method `%s` for %s: undefined method `%s' for %s",
		e.Method, e.Resource, e.Method, e.Resource)
}

func (e *MissingMethodError) Unwrap() error {
	return ErrMissingMethod
}
