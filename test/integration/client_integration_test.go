//go:build integration

package integration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/config"
)

func newTestClient(t *testing.T, baseURL string, circuit config.CircuitBreakerConfig, timeout time.Duration) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: "quotes-content",
		Timeout:     timeout,
		Circuit:     circuit,
		Logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func TestClient_SingleAttemptOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
	}, time.Second)

	resp, err := client.Get(context.Background(), "/quotes.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "requests are never retried")
}

func TestClient_CircuitBreakerLifecycle(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures:   3,
		Timeout:       100 * time.Millisecond,
		HalfOpenLimit: 2,
	}, time.Second)
	ctx := context.Background()

	for range 3 {
		resp, err := client.Get(ctx, "/quotes.json")
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, clients.StateOpen, client.CircuitState())

	_, err := client.Get(ctx, "/quotes.json")
	require.ErrorIs(t, err, clients.ErrCircuitOpen)

	failing.Store(false)
	time.Sleep(150 * time.Millisecond)

	resp, err := client.Get(ctx, "/quotes.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, clients.StateHalfOpen, client.CircuitState())

	resp, err = client.Get(ctx, "/quotes.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, clients.StateClosed, client.CircuitState())
}

func TestClient_HalfOpenFailureReopens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures:   1,
		Timeout:       50 * time.Millisecond,
		HalfOpenLimit: 1,
	}, time.Second)
	ctx := context.Background()

	resp, err := client.Get(ctx, "/quotes.json")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, clients.StateOpen, client.CircuitState())

	time.Sleep(80 * time.Millisecond)

	resp, err = client.Get(ctx, "/quotes.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, clients.StateOpen, client.CircuitState())
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
	}, 100*time.Millisecond)

	start := time.Now()
	_, err := client.Get(context.Background(), "/quotes.json")

	require.ErrorIs(t, err, clients.ErrRequestFailed)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestClient_ConcurrentRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
	}, time.Second)

	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := client.Get(context.Background(), "/quotes.json")
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(workers), calls.Load())
	assert.Equal(t, clients.StateClosed, client.CircuitState())
}

func TestClient_PropagatesIDs(t *testing.T) {
	headers := make(chan http.Header, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
	}, time.Second)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-42")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-7")

	resp, err := client.Get(ctx, "/quotes.json")
	require.NoError(t, err)
	resp.Body.Close()

	got := <-headers
	assert.Equal(t, "req-42", got.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-7", got.Get(middleware.HeaderCorrelationID))
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.CircuitBreakerConfig{
		MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1,
	}, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Get(ctx, "/quotes.json")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.ErrorIs(t, err, clients.ErrRequestFailed)
}
