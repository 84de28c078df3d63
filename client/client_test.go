// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/rhoconnect-go/config"
	"github.com/MKhiriev/rhoconnect-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears the environment layer and restores the process default
// configuration after the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("RHOCONNECT_URL", "")
	t.Setenv("RHOCONNECT_TOKEN", "")
	t.Setenv("RHOCONNECT_HTTP_PROXY", "")
	t.Cleanup(func() { config.SetDefault(nil) })
}

// withTokenInURL turns "http://127.0.0.1:1234" into "http://token@127.0.0.1:1234".
func withTokenInURL(serverURL, token string) string {
	return strings.Replace(serverURL, "://", "://"+token+"@", 1)
}

type capturedRequest struct {
	method      string
	path        string
	contentType string
	query       map[string]string
	body        map[string]any
}

// newRecordingServer answers every request with status/body and records the
// last request it saw.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.contentType = r.Header.Get("Content-Type")
		captured.query = map[string]string{}
		for k := range r.URL.Query() {
			captured.query[k] = r.URL.Query().Get(k)
		}

		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &captured.body)
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_FromEnvURL(t *testing.T) {
	isolate(t)
	t.Setenv("RHOCONNECT_URL", "http://token@test.rhoconnect.com")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "token", c.Token())
	assert.Equal(t, "http://test.rhoconnect.com", c.URI())
}

func TestNew_FromURIOption(t *testing.T) {
	isolate(t)

	c, err := New(WithURI("http://token@test.rhoconnect.com"))
	require.NoError(t, err)
	assert.Equal(t, "token", c.Token())
	assert.Equal(t, "http://test.rhoconnect.com", c.URI())
}

func TestNew_FromTokenOption(t *testing.T) {
	isolate(t)

	c, err := New(WithURI("http://test.rhoconnect.com"), WithToken("token"))
	require.NoError(t, err)
	assert.Equal(t, "token", c.Token())
	assert.Equal(t, "http://test.rhoconnect.com", c.URI())
}

func TestNew_FromDefaultConfig(t *testing.T) {
	isolate(t)
	config.SetDefault(&config.Config{URI: "http://test.rhoconnect.com", Token: "token"})

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "token", c.Token())
	assert.Equal(t, "http://test.rhoconnect.com", c.URI())
}

func TestNew_FromExplicitConfig(t *testing.T) {
	isolate(t)

	c, err := New(WithConfig(&config.Config{URI: "http://cfg.rhoconnect.com", Token: "cfg-token"}))
	require.NoError(t, err)
	assert.Equal(t, "cfg-token", c.Token())
	assert.Equal(t, "http://cfg.rhoconnect.com", c.URI())
}

// TestNew_Precedence verifies explicit > env > config per field.
func TestNew_Precedence(t *testing.T) {
	isolate(t)
	t.Setenv("RHOCONNECT_TOKEN", "env-token")
	cfg := &config.Config{URI: "http://cfg.rhoconnect.com", Token: "cfg-token"}

	c, err := New(WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, "http://cfg.rhoconnect.com", c.URI())
	assert.Equal(t, "env-token", c.Token())

	c, err = New(WithConfig(cfg), WithURI("http://explicit.rhoconnect.com"), WithToken("explicit-token"))
	require.NoError(t, err)
	assert.Equal(t, "http://explicit.rhoconnect.com", c.URI())
	assert.Equal(t, "explicit-token", c.Token())
}

// TestNew_EmbeddedTokenWins verifies that a token inside the uri beats a
// separately supplied token.
func TestNew_EmbeddedTokenWins(t *testing.T) {
	isolate(t)

	c, err := New(WithURI("http://embedded@test.rhoconnect.com"), WithToken("separate"))
	require.NoError(t, err)
	assert.Equal(t, "embedded", c.Token())
}

func TestNew_MissingURI(t *testing.T) {
	isolate(t)

	c, err := New(WithToken("token"))
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrURIRequired)
	assert.NotErrorIs(t, err, ErrTokenRequired)
	assert.Contains(t, err.Error(), "uri is required")
}

// TestNew_MissingToken verifies the token check is independent: the uri still
// resolves and only the token error is reported.
func TestNew_MissingToken(t *testing.T) {
	isolate(t)

	_, err := New(WithURI("http://test.rhoconnect.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenRequired)
	assert.NotErrorIs(t, err, ErrURIRequired)
	assert.Contains(t, err.Error(), "token is required")
}

func TestNew_MissingBoth(t *testing.T) {
	isolate(t)

	_, err := New()
	assert.ErrorIs(t, err, ErrURIRequired)
	assert.ErrorIs(t, err, ErrTokenRequired)
}

// ── Create / Update / Destroy ─────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "done")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.Create(context.Background(), "Person", "user1", models.Attributes{"id": 1, "name": "user1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "done", string(resp.Body))

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/source/push_objects", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "token", got.body["api_token"])
	assert.Equal(t, "Person", got.body["source_id"])
	assert.Equal(t, "user1", got.body["user_id"])
	assert.Equal(t, map[string]any{"1": map[string]any{"id": float64(1), "name": "user1"}}, got.body["objects"])
}

func TestUpdate_Success(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "done")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.Update(context.Background(), "Person", "user1", models.Attributes{"id": 1, "name": "user1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "done", string(resp.Body))
	assert.Equal(t, "/api/source/push_objects", got.path)
	assert.Equal(t, "application/json", got.contentType)
}

func TestDestroy_Success(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "done")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.Destroy(context.Background(), "Person", "user1", models.Attributes{"id": 1, "name": "user1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "done", string(resp.Body))
	assert.Equal(t, "/api/source/push_deletes", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, []any{"1"}, got.body["objects"])
}

// TestCreate_NonSuccessIsNotAnError verifies that responses come back
// unmodified; mapping to errors is the caller's choice.
func TestCreate_NonSuccessIsNotAnError(t *testing.T) {
	isolate(t)
	srv, _ := newRecordingServer(t, http.StatusInternalServerError, "boom")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.Create(context.Background(), "Person", "user1", models.Attributes{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var remote *RemoteError
	require.True(t, errors.As(CheckResponse(resp), &remote))
	assert.Equal(t, "Internal Server Error - boom", remote.Error())
}

func TestPush_ArgumentValidation(t *testing.T) {
	isolate(t)

	c, err := New(WithURI("http://token@test.rhoconnect.com"))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Create(ctx, "Person", "user1", models.Attributes{"name": "no id"})
	assert.ErrorIs(t, err, ErrMissingObjectID)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = c.Update(ctx, "", "user1", models.Attributes{"id": 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = c.Destroy(ctx, "Person", "", models.Attributes{"id": 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreate_TransportError(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(WithURI(withTokenInURL(url, "token")))
	require.NoError(t, err)

	resp, err := c.Create(context.Background(), "Person", "user1", models.Attributes{"id": 1})
	assert.Error(t, err)
	assert.Nil(t, resp)
}

// ── callbacks ────────────────────────────────────────────────────────────────

func TestSetAuthCallback(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "done")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.SetAuthCallback(context.Background(), "http://example.com/callback")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "done", string(resp.Body))
	assert.Equal(t, "/api/set_auth_callback", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "http://example.com/callback", got.body["callback"])
	assert.NotContains(t, got.body, "source_id")
}

func TestSetQueryCallback(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "done")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.SetQueryCallback(context.Background(), "Person", "http://example.com/callback")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/set_query_callback", got.path)
	assert.Equal(t, "Person", got.body["source_id"])
	assert.Equal(t, "http://example.com/callback", got.body["callback"])
}

func TestSaveAdapter(t *testing.T) {
	isolate(t)
	srv, got := newRecordingServer(t, http.StatusOK, "")

	c, err := New(WithURI(withTokenInURL(srv.URL, "token")))
	require.NoError(t, err)

	resp, err := c.SaveAdapter(context.Background(), "http://app.example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/source/save_adapter", got.path)
	assert.Equal(t, "http://app.example.com", got.query["attributes[adapter_url]"])
	assert.Equal(t, "token", got.query["api_token"])
}

// TestNewFactory verifies the factory builds independent clients from the
// captured options.
func TestNewFactory(t *testing.T) {
	isolate(t)

	factory := NewFactory(WithURI("http://token@test.rhoconnect.com"))
	s1, err := factory()
	require.NoError(t, err)
	s2, err := factory()
	require.NoError(t, err)

	assert.NotSame(t, s1, s2)
	assert.Equal(t, "token", s1.(*Client).Token())
}
