// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, ErrMalformed, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
)

// QuoteSource retrieves the quotes document.
//
// The document is fetched on every call; implementations do not cache it.
type QuoteSource interface {
	// FetchQuoteSource performs a single attempt to download and parse the document.
	// Returns domain.ErrUnavailable if the content host cannot be reached or
	// answers with a non-success status, and domain.ErrMalformed if the body
	// is not a valid quotes document.
	FetchQuoteSource(ctx context.Context) (*domain.QuoteSource, error)
}

// MessageCatalog resolves the localized prompt templates for a request locale.
type MessageCatalog interface {
	// Lookup returns the bundle that best matches locale, falling back
	// to the default bundle when nothing matches. It never fails.
	Lookup(locale string) domain.Messages
}

// Fulfillment outcomes reported to FulfillmentObserver.ObserveOutcome.
const (
	OutcomeSuccess      = "success"
	OutcomeFetchError   = "fetch_error"
	OutcomeContentError = "content_error"
)

// FulfillmentObserver records the outcome of each fulfillment.
type FulfillmentObserver interface {
	// ObserveFetch records how long a content fetch took and whether it failed.
	ObserveFetch(d time.Duration, err error)

	// ObserveOutcome records the final outcome of a fulfillment.
	ObserveOutcome(outcome string)
}
