// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// What does NOT belong here:
//   - HTTP or Dialogflow wire formats (that's adapters)
//   - Downloading and decoding the quotes document (that's the ACL)
//   - Selection rules (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/logging"
	"github.com/jsamuelsen/quote-fulfillment/internal/ports"
)

// FulfillmentServiceConfig contains the dependencies of the fulfillment service.
type FulfillmentServiceConfig struct {
	// Source downloads the quotes document. Required.
	Source ports.QuoteSource

	// Catalog resolves localized prompts. Required.
	Catalog ports.MessageCatalog

	// Observer records outcomes. Optional.
	Observer ports.FulfillmentObserver

	// Rand picks the author and quote. Optional; defaults to the
	// top-level math/rand/v2 source. Must be safe for concurrent use.
	Rand domain.Rand

	// ImageURL is the card background image.
	ImageURL string
}

// FulfillmentService answers webhook intents with a random quote.
// It is safe for concurrent use.
type FulfillmentService struct {
	source   ports.QuoteSource
	catalog  ports.MessageCatalog
	observer ports.FulfillmentObserver
	rng      domain.Rand
	imageURL string
}

// NewFulfillmentService creates a new fulfillment service.
// Panics if Source or Catalog is nil.
func NewFulfillmentService(cfg FulfillmentServiceConfig) *FulfillmentService {
	if cfg.Source == nil {
		panic("FulfillmentService: Source is required")
	}

	if cfg.Catalog == nil {
		panic("FulfillmentService: Catalog is required")
	}

	observer := cfg.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = globalRand{}
	}

	return &FulfillmentService{
		source:   cfg.Source,
		catalog:  cfg.Catalog,
		observer: observer,
		rng:      rng,
		imageURL: cfg.ImageURL,
	}
}

// Fulfill routes the intent and produces the reply.
//
// Only the default welcome intent is answered; any other intent is a
// domain.NotFoundError. Fetch and content failures never surface as errors:
// they are logged and answered with the localized apology.
func (s *FulfillmentService) Fulfill(ctx context.Context, req domain.FulfillmentRequest) (*domain.Reply, error) {
	ctx = logging.WithIntent(ctx, req.Intent, req.Locale)
	logger := logging.FromContext(ctx)

	if req.Intent != domain.IntentDefaultWelcome {
		logger.WarnContext(ctx, "unhandled intent")
		return nil, domain.NewNotFoundError("intent", req.Intent)
	}

	logger.DebugContext(ctx, "fulfilling intent",
		slog.String("session", req.Session),
		slog.Any("capabilities", []string(req.Capabilities)),
	)

	msgs := s.catalog.Lookup(req.Locale)

	quote, err := s.selectQuote(ctx)
	if err != nil {
		outcome, kind := ports.OutcomeFetchError, "fetch"
		if domain.IsMalformed(err) {
			outcome, kind = ports.OutcomeContentError, "content"
		}

		logger.ErrorContext(ctx, "no quote available, sending apology",
			slog.String("failure_kind", kind),
			slog.Any("error", err),
		)
		s.observer.ObserveOutcome(outcome)

		return AssembleApology(msgs), nil
	}

	reply := AssembleReply(quote, msgs, req.Capabilities.HasScreen(), s.imageURL)
	s.observer.ObserveOutcome(ports.OutcomeSuccess)

	logger.InfoContext(ctx, "quote served",
		slog.String("author", quote.Author),
		slog.Bool("card", reply.Card != nil),
	)

	return reply, nil
}

func (s *FulfillmentService) selectQuote(ctx context.Context) (domain.SelectedQuote, error) {
	start := time.Now()
	doc, err := s.source.FetchQuoteSource(ctx)
	s.observer.ObserveFetch(time.Since(start), err)

	if err != nil {
		return domain.SelectedQuote{}, fmt.Errorf("fetching quote source: %w", err)
	}

	quote, err := doc.Select(s.rng)
	if err != nil {
		return domain.SelectedQuote{}, fmt.Errorf("selecting quote: %w", err)
	}

	return quote, nil
}

// globalRand uses the concurrency-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // selection is not security sensitive

type nopObserver struct{}

func (nopObserver) ObserveFetch(time.Duration, error) {}
func (nopObserver) ObserveOutcome(string)             {}
