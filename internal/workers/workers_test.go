// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rhoconnect-go/client"
	"github.com/MKhiriev/rhoconnect-go/logger"
	"github.com/MKhiriev/rhoconnect-go/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	boom := errors.New("boom")
	w1 := &mockWorker{}
	w2 := &mockWorker{err: boom}
	w3 := &mockWorker{}

	err := NewWorkers(w1, w2, w3).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
}

func TestWorkers_Run_CancelledContext(t *testing.T) {
	w := &mockWorker{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWorkers(w).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, w.runCount)
}

// fakeRhoConnect records callback registrations.
type fakeRhoConnect struct {
	mu       sync.Mutex
	calls    map[string][]models.CallbackPayload
	failPath string
}

func (f *fakeRhoConnect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var p models.CallbackPayload
	_ = json.NewDecoder(r.Body).Decode(&p)

	f.mu.Lock()
	f.calls[r.URL.Path] = append(f.calls[r.URL.Path], p)
	f.mu.Unlock()

	if r.URL.Path == f.failPath {
		http.Error(w, "nope", http.StatusUnauthorized)
	}
}

func newClient(t *testing.T, fake *fakeRhoConnect) *client.Client {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	c, err := client.New(client.WithURI(srv.URL), client.WithToken("token"))
	require.NoError(t, err)
	return c
}

func TestCallbackWorker_Run(t *testing.T) {
	fake := &fakeRhoConnect{calls: map[string][]models.CallbackPayload{}}
	c := newClient(t, fake)

	w := NewCallbackWorker(c, "http://app.example.com/rhoconnect/", []string{"Product", "Order"}, logger.Nop())
	require.NoError(t, w.Run(context.Background()))

	auth := fake.calls["/api/set_auth_callback"]
	require.Len(t, auth, 1)
	assert.Equal(t, models.CallbackPayload{APIToken: "token", Callback: "http://app.example.com/rhoconnect/authenticate"}, auth[0])

	query := fake.calls["/api/set_query_callback"]
	require.Len(t, query, 2)
	assert.Equal(t, "Product", query[0].SourceID)
	assert.Equal(t, "Order", query[1].SourceID)
	assert.Equal(t, "http://app.example.com/rhoconnect/query", query[1].Callback)
}

func TestCallbackWorker_RemoteError(t *testing.T) {
	fake := &fakeRhoConnect{calls: map[string][]models.CallbackPayload{}, failPath: "/api/set_auth_callback"}
	c := newClient(t, fake)

	err := NewCallbackWorker(c, "http://app.example.com/rhoconnect", []string{"Product"}, logger.Nop()).Run(context.Background())

	var remote *client.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	// query callbacks are still registered
	assert.Len(t, fake.calls["/api/set_query_callback"], 1)
}
