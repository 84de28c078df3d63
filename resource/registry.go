// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/rhoconnect-go/models"
)

// Registry maps resource names, matched exactly, to host-supplied values
// implementing one or more contract interfaces. It is safe for concurrent
// use.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]any
}

var defaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]any)}
}

// Default returns the process-wide registry used when none is injected.
func Default() *Registry {
	return defaultRegistry
}

// Register binds res to name. Registering the same name twice fails with
// [ErrAlreadyRegistered].
func (r *Registry) Register(name string, res any) error {
	if name == "" {
		return ErrEmptyName
	}
	if res == nil {
		return fmt.Errorf("%w: %s", ErrNilResource, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resources[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.resources[name] = res

	return nil
}

// MustRegister is like Register but panics on error. Meant for package init
// and program startup.
func (r *Registry) MustRegister(name string, res any) {
	if err := r.Register(name, res); err != nil {
		panic(err)
	}
}

// Lookup returns the value registered under name or [ErrMissingResource].
func (r *Registry) Lookup(name string) (any, error) {
	r.mu.RLock()
	res, ok := r.resources[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %s", ErrMissingResource, name)
	}
	return res, nil
}

// Names returns the registered resource names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Query dispatches to the [Querier] registered under name.
func (r *Registry) Query(ctx context.Context, name, partition string) ([]any, error) {
	res, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	q, ok := res.(Querier)
	if !ok {
		return nil, &MissingMethodError{Resource: name, Method: "Query"}
	}

	return q.Query(ctx, partition)
}

// ReceiveCreate dispatches to the [CreateReceiver] registered under name.
func (r *Registry) ReceiveCreate(ctx context.Context, name, partition string, attrs models.Attributes) (string, error) {
	res, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	c, ok := res.(CreateReceiver)
	if !ok {
		return "", &MissingMethodError{Resource: name, Method: "ReceiveCreate"}
	}

	return c.ReceiveCreate(ctx, partition, attrs)
}

// ReceiveUpdate dispatches to the [UpdateReceiver] registered under name.
func (r *Registry) ReceiveUpdate(ctx context.Context, name, partition string, attrs models.Attributes) (string, error) {
	res, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	u, ok := res.(UpdateReceiver)
	if !ok {
		return "", &MissingMethodError{Resource: name, Method: "ReceiveUpdate"}
	}

	return u.ReceiveUpdate(ctx, partition, attrs)
}

// ReceiveDelete dispatches to the [DeleteReceiver] registered under name.
func (r *Registry) ReceiveDelete(ctx context.Context, name, partition string, attrs models.Attributes) (string, error) {
	res, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	d, ok := res.(DeleteReceiver)
	if !ok {
		return "", &MissingMethodError{Resource: name, Method: "ReceiveDelete"}
	}

	return d.ReceiveDelete(ctx, partition, attrs)
}
