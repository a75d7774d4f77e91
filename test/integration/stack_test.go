//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients/acl"
	httpserver "github.com/jsamuelsen/quote-fulfillment/internal/adapters/http"
	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-fulfillment/internal/app"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/config"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/i18n"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-fulfillment/internal/ports"
)

const (
	quotesPath = "/actions-on-google/dialogflow-quotes-java/master/quotes.json"
	imageURL   = "https://example.com/quote-background.png"

	capabilityAudio  = "actions.capability.AUDIO_OUTPUT"
	capabilityScreen = "actions.capability.SCREEN_OUTPUT"

	sampleDocument = `{
		"info": "Quotes from the DevRel team",
		"data": [{"author": "Ada Lovelace", "quotes": ["That brain of mine is something more than merely mortal."]}]
	}`
)

// quoteHost is a fake content host whose answer can be swapped mid-test.
type quoteHost struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	delay    time.Duration
	requests []*http.Request
}

func newQuoteHost() *quoteHost {
	h := &quoteHost{status: http.StatusOK, body: sampleDocument}
	h.Server = httptest.NewServer(http.HandlerFunc(h.serve))

	return h
}

func (h *quoteHost) serve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	status, body, delay := h.status, h.body, h.delay
	h.requests = append(h.requests, r.Clone(context.Background()))
	h.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if r.URL.Path != quotesPath {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// Serve replaces the host's answer.
func (h *quoteHost) Serve(status int, body string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.status, h.body = status, body
}

func (h *quoteHost) SetDelay(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.delay = d
}

// Requests returns a copy of the requests received so far.
func (h *quoteHost) Requests() []*http.Request {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]*http.Request(nil), h.requests...)
}

// stack is the full service wired in-process against a fake content host.
type stack struct {
	host     *quoteHost
	client   *clients.Client
	source   *acl.QuoteSourceClient
	registry *prometheus.Registry
	server   *httptest.Server
}

type stackOptions struct {
	circuit config.CircuitBreakerConfig
	timeout time.Duration
}

func newStack(opts stackOptions) (*stack, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	host := newQuoteHost()

	if opts.circuit.MaxFailures == 0 {
		opts.circuit = config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1}
	}

	client, err := clients.New(&clients.Config{
		BaseURL:     host.URL,
		ServiceName: "quotes-content",
		Timeout:     opts.timeout,
		Circuit:     opts.circuit,
		Logger:      logger,
	})
	if err != nil {
		host.Close()
		return nil, fmt.Errorf("creating client: %w", err)
	}

	source := acl.NewQuoteSourceClient(acl.QuoteSourceConfig{Client: client, Path: quotesPath, Logger: logger})

	catalog, err := i18n.New("en-US")
	if err != nil {
		host.Close()
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	registry := prometheus.NewRegistry()

	metrics, err := telemetry.NewFulfillmentMetrics(registry)
	if err != nil {
		host.Close()
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	health := ports.NewHealthRegistry()
	if err := health.Register(source); err != nil {
		host.Close()
		return nil, fmt.Errorf("registering health check: %w", err)
	}

	service := app.NewFulfillmentService(app.FulfillmentServiceConfig{
		Source:   source,
		Catalog:  catalog,
		Observer: metrics,
		ImageURL: imageURL,
	})

	engine := gin.New()
	httpserver.SetupRouter(engine, httpserver.RouterConfig{
		Logger:             logger,
		ServiceName:        "quote-fulfillment",
		HealthHandler:      handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "abc123", "now"), registry),
		FulfillmentHandler: handlers.NewFulfillmentHandler(service),
		Timeout:            httpserver.DefaultRequestTimeout,
	})

	return &stack{
		host:     host,
		client:   client,
		source:   source,
		registry: registry,
		server:   httptest.NewServer(engine),
	}, nil
}

func (s *stack) Close() {
	s.server.Close()
	s.host.Close()
}

// webhookRequest builds a Dialogflow v2 webhook body.
func webhookRequest(intent, locale string, capabilities ...string) []byte {
	caps := make([]map[string]string, 0, len(capabilities))
	for _, c := range capabilities {
		caps = append(caps, map[string]string{"name": c})
	}

	body, _ := json.Marshal(map[string]any{
		"responseId": "resp-1",
		"session":    "projects/quotes/agent/sessions/integration",
		"queryResult": map[string]any{
			"queryText":    "talk to quotes",
			"languageCode": locale,
			"intent": map[string]string{
				"name":        "projects/quotes/agent/intents/welcome",
				"displayName": intent,
			},
		},
		"originalDetectIntentRequest": map[string]any{
			"source":  "google",
			"version": "2",
			"payload": map[string]any{
				"user":    map[string]string{"locale": locale},
				"surface": map[string]any{"capabilities": caps},
			},
		},
	})

	return body
}

// surfaceCapabilities maps a surface name used in scenarios to its capabilities.
func surfaceCapabilities(surface string) ([]string, error) {
	switch surface {
	case "speaker":
		return []string{capabilityAudio}, nil
	case "screen":
		return []string{capabilityAudio, capabilityScreen}, nil
	default:
		return nil, fmt.Errorf("unknown surface %q", surface)
	}
}

// fulfill posts body to the webhook route.
func (s *stack) fulfill(ctx context.Context, body []byte) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.server.URL+"/api/v1/fulfillment", bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.do(req)
}

func (s *stack) get(ctx context.Context, path string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.server.URL+path, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	return s.do(req)
}

func (s *stack) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.server.Client().Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp, body, nil
}

// webhookReply is the decoded subset of a webhook response the tests inspect.
type webhookReply struct {
	FulfillmentText string `json:"fulfillmentText"`
	Payload         struct {
		Google struct {
			ExpectUserResponse bool `json:"expectUserResponse"`
			RichResponse       struct {
				Items []struct {
					SimpleResponse *struct {
						TextToSpeech string `json:"textToSpeech"`
						DisplayText  string `json:"displayText"`
					} `json:"simpleResponse"`
					BasicCard *struct {
						Title         string `json:"title"`
						FormattedText string `json:"formattedText"`
						Image         *struct {
							URL               string `json:"url"`
							AccessibilityText string `json:"accessibilityText"`
						} `json:"image"`
					} `json:"basicCard"`
				} `json:"items"`
			} `json:"richResponse"`
		} `json:"google"`
	} `json:"payload"`
}

func decodeReply(body []byte) (*webhookReply, error) {
	var reply webhookReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("decoding webhook response: %w", err)
	}

	if len(reply.Payload.Google.RichResponse.Items) == 0 {
		return nil, fmt.Errorf("webhook response has no items: %s", body)
	}

	return &reply, nil
}

// speech returns the first item's spoken text.
func (r *webhookReply) speech() string {
	if sr := r.Payload.Google.RichResponse.Items[0].SimpleResponse; sr != nil {
		return sr.TextToSpeech
	}

	return ""
}

func (r *webhookReply) hasCard() bool {
	for _, item := range r.Payload.Google.RichResponse.Items {
		if item.BasicCard != nil {
			return true
		}
	}

	return false
}
