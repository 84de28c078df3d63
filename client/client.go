// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dario.cat/mergo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/internal/utils"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

const (
	pushObjectsPath      = "/api/source/push_objects"
	pushDeletesPath      = "/api/source/push_deletes"
	setAuthCallbackPath  = "/api/set_auth_callback"
	setQueryCallbackPath = "/api/set_query_callback"
	saveAdapterPath      = "/api/source/save_adapter"
)

// Response is the unmodified answer of the remote service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client talks to a single RhoConnect service. It is immutable after [New].
type Client struct {
	http *utils.HTTPClient

	uri   string
	token string

	logger *logger.Logger
}

// target is the per-field resolution unit merged across the explicit,
// environment and configuration layers.
type target struct {
	URI   string
	Token string
	Proxy string
}

// New builds a client. Each of uri and token resolves independently from, in
// order: options, environment (RHOCONNECT_URL, RHOCONNECT_TOKEN), then the
// configuration ([WithConfig] or the process default). A token embedded in
// the resolved uri wins over any separately supplied token.
//
// Missing values yield [ErrURIRequired] and/or [ErrTokenRequired], both
// wrapping [ErrInvalidArgument].
func New(opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := resolveTarget(o)
	if err != nil {
		return nil, err
	}

	return &Client{
		http: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL: t.URI,
			Proxy:   t.Proxy,
			Timeout: o.timeout,
		}),
		uri:    t.URI,
		token:  t.Token,
		logger: logger.OrNop(o.logger),
	}, nil
}

func resolveTarget(o options) (target, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return target{}, err
	}
	cfg := config.OrDefault(o.cfg)

	t := target{URI: o.uri, Token: o.token}
	layers := []target{
		{URI: env.URL, Token: env.Token, Proxy: env.HTTPProxy},
		{URI: cfg.URI, Token: cfg.Token, Proxy: cfg.HTTPProxy},
	}
	for _, layer := range layers {
		if err = mergo.Merge(&t, layer); err != nil {
			return target{}, fmt.Errorf("error merging client settings: %w", err)
		}
	}

	uri, token, err := config.SplitCredentials(t.URI)
	if err != nil {
		return target{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	t.URI = uri
	if token != "" {
		t.Token = token
	}

	var errs []error
	if t.URI == "" {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidArgument, ErrURIRequired))
	}
	if t.Token == "" {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidArgument, ErrTokenRequired))
	}

	return t, errors.Join(errs...)
}

// URI returns the resolved base uri with credentials stripped.
func (c *Client) URI() string {
	return c.uri
}

// Token returns the resolved api token.
func (c *Client) Token() string {
	return c.token
}

// Create implements [Syncer]. It POSTs the object to /api/source/push_objects.
func (c *Client) Create(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error) {
	return c.pushObjects(ctx, resource, partition, attrs)
}

// Update implements [Syncer]. It uses the same endpoint as Create.
func (c *Client) Update(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error) {
	return c.pushObjects(ctx, resource, partition, attrs)
}

// Destroy implements [Syncer]. It POSTs the object id to
// /api/source/push_deletes.
func (c *Client) Destroy(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error) {
	id, err := validatePush(resource, partition, attrs)
	if err != nil {
		return nil, err
	}

	return c.post(ctx, pushDeletesPath, models.PushPayload{
		APIToken: c.token,
		SourceID: resource,
		UserID:   partition,
		Objects:  []string{id},
	})
}

// SetAuthCallback registers the url the service calls to authenticate
// mobile users.
func (c *Client) SetAuthCallback(ctx context.Context, callbackURL string) (*Response, error) {
	return c.post(ctx, setAuthCallbackPath, models.CallbackPayload{
		APIToken: c.token,
		Callback: callbackURL,
	})
}

// SetQueryCallback registers the url the service calls to query resource.
func (c *Client) SetQueryCallback(ctx context.Context, resource, callbackURL string) (*Response, error) {
	return c.post(ctx, setQueryCallbackPath, models.CallbackPayload{
		APIToken: c.token,
		SourceID: resource,
		Callback: callbackURL,
	})
}

// SaveAdapter registers endpoint as the adapter url of this application with
// a GET to /api/source/save_adapter.
func (c *Client) SaveAdapter(ctx context.Context, endpoint string) (*Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("attributes[adapter_url]", endpoint).
		SetQueryParam("api_token", c.token).
		Get(saveAdapterPath)
	if err != nil {
		return nil, fmt.Errorf("save adapter request: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Msg("adapter endpoint registered")

	return newResponse(resp), nil
}

func (c *Client) pushObjects(ctx context.Context, resource, partition string, attrs models.Attributes) (*Response, error) {
	id, err := validatePush(resource, partition, attrs)
	if err != nil {
		return nil, err
	}

	return c.post(ctx, pushObjectsPath, models.PushPayload{
		APIToken: c.token,
		SourceID: resource,
		UserID:   partition,
		Objects:  map[string]models.Attributes{id: attrs},
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("rhoconnect request sent")

	return newResponse(resp), nil
}

func validatePush(resource, partition string, attrs models.Attributes) (string, error) {
	err := validation.Errors{
		"resource":  validation.Validate(resource, validation.Required),
		"partition": validation.Validate(partition, validation.Required),
	}.Filter()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	raw, ok := attrs["id"]
	if !ok || raw == nil || fmt.Sprint(raw) == "" {
		return "", fmt.Errorf("%w: %w for %v", ErrInvalidArgument, ErrMissingObjectID, attrs)
	}

	return fmt.Sprint(raw), nil
}

func newResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}
