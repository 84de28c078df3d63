// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
	"github.com/MKhiriev/rhoconnect-go/resource"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

// Operation names one inbound request kind. Its value is also the route path
// segment.
type Operation string

const (
	OpAuthenticate Operation = "authenticate"
	OpQuery        Operation = "query"
	OpCreate       Operation = "create"
	OpUpdate       Operation = "update"
	OpDelete       Operation = "delete"
)

// Operations lists every operation in registration order.
func Operations() []Operation {
	return []Operation{OpAuthenticate, OpQuery, OpCreate, OpUpdate, OpDelete}
}

// Option configures [Helpers].
type Option func(*Helpers)

// WithRegistry sets the registry resources are resolved from. Defaults to
// [resource.Default].
func WithRegistry(r *resource.Registry) Option {
	return func(h *Helpers) { h.registry = r }
}

// WithConfig pins the configuration. Without it the process default is read
// on every request, so a later rhoconnect.Configure is picked up.
func WithConfig(cfg *config.Config) Option {
	return func(h *Helpers) { h.cfg = cfg }
}

func WithLogger(l *logger.Logger) Option {
	return func(h *Helpers) { h.logger = l }
}

// WithInboundPushes makes the observer push writes received from RhoConnect
// back to it. By default create, update and delete run under
// [resource.WithoutSync].
func WithInboundPushes() Option {
	return func(h *Helpers) { h.pushInbound = true }
}

// Helpers dispatches inbound requests to registered resources. It keeps no
// per-request state and is safe for concurrent use.
type Helpers struct {
	registry *resource.Registry
	cfg      *config.Config
	logger   *logger.Logger

	pushInbound bool
}

func NewHelpers(opts ...Option) *Helpers {
	h := &Helpers{}
	for _, opt := range opts {
		opt(h)
	}

	if h.registry == nil {
		h.registry = resource.Default()
	}
	h.logger = logger.OrNop(h.logger)

	return h
}

// Call runs op. It is the single entry point used by the HTTP adapters.
func (h *Helpers) Call(ctx context.Context, op Operation, contentType string, body []byte) models.Result {
	switch op {
	case OpAuthenticate:
		return h.Authenticate(ctx, contentType, body)
	case OpQuery:
		return h.Query(ctx, contentType, body)
	case OpCreate:
		return h.Create(ctx, contentType, body)
	case OpUpdate:
		return h.Update(ctx, contentType, body)
	case OpDelete:
		return h.Delete(ctx, contentType, body)
	default:
		return h.failure(op, "", fmt.Errorf("%w: %s", ErrUnknownOperation, op))
	}
}

// Authenticate passes the request parameters to the configured authenticate
// callback. No callback means every request is accepted.
func (h *Helpers) Authenticate(ctx context.Context, contentType string, body []byte) models.Result {
	var creds models.Credentials
	if err := decodeParams(contentType, body, &creds); err != nil {
		return h.failure(OpAuthenticate, "", err)
	}
	if creds == nil {
		creds = models.Credentials{}
	}

	auth := config.OrDefault(h.cfg).Authenticate
	if auth != nil && !auth(ctx, creds) {
		return textResult(http.StatusUnauthorized, "")
	}

	return textResult(http.StatusOK, "")
}

// Query responds with a JSON object mapping each object id to its
// attributes. Objects without an id are keyed by their 1-based position, or
// the next free number when another object already owns that id. Two
// objects with the same id fail the request.
func (h *Helpers) Query(ctx context.Context, contentType string, body []byte) models.Result {
	var env models.Envelope
	if err := decodeParams(contentType, body, &env); err != nil {
		return h.failure(OpQuery, "", err)
	}

	objs, err := h.registry.Query(ctx, env.Resource, env.Partition)
	if err != nil {
		return h.failure(OpQuery, env.Resource, err)
	}

	out, err := keyObjects(objs, config.OrDefault(h.cfg).SyncTimeAsInt)
	if err != nil {
		return h.failure(OpQuery, env.Resource, err)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return h.failure(OpQuery, env.Resource, err)
	}

	return models.Result{Status: http.StatusOK, ContentType: contentTypeJSON, Body: string(data)}
}

// Create hands a device-side object to the resource and responds with the
// new id.
func (h *Helpers) Create(ctx context.Context, contentType string, body []byte) models.Result {
	return h.receive(ctx, OpCreate, contentType, body, h.registry.ReceiveCreate)
}

func (h *Helpers) Update(ctx context.Context, contentType string, body []byte) models.Result {
	return h.receive(ctx, OpUpdate, contentType, body, h.registry.ReceiveUpdate)
}

func (h *Helpers) Delete(ctx context.Context, contentType string, body []byte) models.Result {
	return h.receive(ctx, OpDelete, contentType, body, h.registry.ReceiveDelete)
}

// keyObjects normalizes objs and keys them by id. Natural ids are placed
// first so positional ids never displace them.
func keyObjects(objs []any, timeAsInt bool) (map[string]models.Attributes, error) {
	out := make(map[string]models.Attributes, len(objs))
	var unkeyed []int
	normalized := make([]models.Attributes, len(objs))

	for i, obj := range objs {
		id, attrs, err := resource.Normalize(obj, timeAsInt)
		if err != nil {
			return nil, err
		}
		normalized[i] = attrs
		if id == "" {
			unkeyed = append(unkeyed, i)
			continue
		}
		if _, taken := out[id]; taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateObjectID, id)
		}
		out[id] = attrs
	}

	next := 0
	for _, i := range unkeyed {
		if next <= i {
			next = i + 1
		}
		for {
			if _, taken := out[strconv.Itoa(next)]; !taken {
				break
			}
			next++
		}
		out[strconv.Itoa(next)] = normalized[i]
		next++
	}

	return out, nil
}

type receiveFunc func(ctx context.Context, name, partition string, attrs models.Attributes) (string, error)

func (h *Helpers) receive(ctx context.Context, op Operation, contentType string, body []byte, fn receiveFunc) models.Result {
	var env models.Envelope
	if err := decodeParams(contentType, body, &env); err != nil {
		return h.failure(op, "", err)
	}
	if env.Attributes == nil {
		env.Attributes = models.Attributes{}
	}

	if !h.pushInbound {
		ctx = resource.WithoutSync(ctx)
	}

	id, err := fn(ctx, env.Resource, env.Partition, env.Attributes)
	if err != nil {
		return h.failure(op, env.Resource, err)
	}

	return textResult(http.StatusOK, id)
}

func (h *Helpers) failure(op Operation, resourceName string, err error) models.Result {
	status := statusFromError(err)

	h.logger.Err(err).
		Str("operation", string(op)).
		Str("resource", resourceName).
		Int("status", status).
		Msg("rhoconnect request failed")

	return textResult(status, messageFromError(err, resourceName))
}

// decodeParams unmarshals a JSON body into dst. Bodies of any other content
// type, and empty bodies, leave dst untouched.
func decodeParams(contentType string, body []byte, dst any) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != contentTypeJSON {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

func textResult(status int, body string) models.Result {
	return models.Result{Status: status, ContentType: contentTypeText, Body: body}
}
