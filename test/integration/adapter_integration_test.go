//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/config"
)

func newAdapterStack(t *testing.T, opts stackOptions) *stack {
	t.Helper()

	s, err := newStack(opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func TestQuoteSourceClient_FetchesDocument(t *testing.T) {
	s := newAdapterStack(t, stackOptions{})

	ctx := middleware.ContextWithRequestID(context.Background(), "req-adapter")
	doc, err := s.source.FetchQuoteSource(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Quotes from the DevRel team", doc.Info)
	require.Len(t, doc.Authors, 1)
	assert.Equal(t, "Ada Lovelace", doc.Authors[0].Name)
	assert.Equal(t, []string{"That brain of mine is something more than merely mortal."}, doc.Authors[0].Quotes)

	reqs := s.host.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, quotesPath, reqs[0].URL.Path)
	assert.Equal(t, "req-adapter", reqs[0].Header.Get(middleware.HeaderRequestID))
}

func TestQuoteSourceClient_ErrorTranslation(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		wantUnavailable bool
		wantMalformed   bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message": "boom"}`, wantUnavailable: true},
		{name: "not found", status: http.StatusNotFound, body: `not here`, wantUnavailable: true},
		{name: "empty object", status: http.StatusOK, body: `{}`, wantMalformed: true},
		{name: "truncated JSON", status: http.StatusOK, body: `{"info": "x", "data": [`, wantMalformed: true},
		{name: "author without quotes", status: http.StatusOK, body: `{"info": "x", "data": [{"author": "Nobody", "quotes": []}]}`, wantMalformed: true},
		{name: "no authors", status: http.StatusOK, body: `{"info": "x", "data": []}`, wantMalformed: true},
		{name: "null quote", status: http.StatusOK, body: `{"info": "x", "data": [{"author": "a", "quotes": [null]}]}`, wantMalformed: true},
		{name: "trailing garbage", status: http.StatusOK, body: sampleDocument + ` trailing`, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAdapterStack(t, stackOptions{})
			s.host.Serve(tt.status, tt.body)

			doc, err := s.source.FetchQuoteSource(context.Background())

			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.wantUnavailable, domain.IsUnavailable(err), "unavailable: %v", err)
			assert.Equal(t, tt.wantMalformed, domain.IsMalformed(err), "malformed: %v", err)
		})
	}
}

func TestQuoteSourceClient_OpenCircuit(t *testing.T) {
	s := newAdapterStack(t, stackOptions{
		circuit: config.CircuitBreakerConfig{MaxFailures: 2, Timeout: time.Minute, HalfOpenLimit: 1},
	})
	s.host.Serve(http.StatusServiceUnavailable, "")
	ctx := context.Background()

	for range 2 {
		_, err := s.source.FetchQuoteSource(ctx)
		require.True(t, domain.IsUnavailable(err))
	}
	require.Equal(t, clients.StateOpen, s.client.CircuitState())

	before := len(s.host.Requests())

	_, err := s.source.FetchQuoteSource(ctx)
	assert.True(t, domain.IsUnavailable(err))
	assert.Len(t, s.host.Requests(), before, "open circuit must not reach the host")

	assert.Error(t, s.source.Check(ctx))
}

func TestQuoteSourceClient_HealthCheck(t *testing.T) {
	s := newAdapterStack(t, stackOptions{})

	assert.Equal(t, "quotes-content", s.source.Name())
	require.NoError(t, s.source.Check(context.Background()))

	reqs := s.host.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodHead, reqs[0].Method)

	s.host.Serve(http.StatusBadGateway, "")
	assert.True(t, domain.IsUnavailable(s.source.Check(context.Background())))
}

func TestQuoteSourceClient_SlowHostTimesOut(t *testing.T) {
	s := newAdapterStack(t, stackOptions{timeout: 100 * time.Millisecond})
	s.host.SetDelay(time.Second)

	_, err := s.source.FetchQuoteSource(context.Background())

	assert.True(t, domain.IsUnavailable(err), "got %v", err)
}
