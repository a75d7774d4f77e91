// Package domain contains core business entities and rules.
package domain

// quoteSourceName identifies the quotes document in content errors.
const quoteSourceName = "quote source"

// Rand is the source of randomness used for quote selection.
// *math/rand/v2.Rand satisfies it; it does not need to be cryptographically secure.
type Rand interface {
	// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// QuoteSource is the parsed quotes document.
// This is a domain entity - it has no knowledge of the wire format.
type QuoteSource struct {
	// Info is the free-form description shipped with the document.
	Info string

	// Authors lists every author together with their quotes.
	Authors []Author
}

// Author groups the quotes attributed to one person.
type Author struct {
	Name   string
	Quotes []string
}

// SelectedQuote is the quote chosen for a single request.
type SelectedQuote struct {
	Info   string
	Author string
	Text   string
}

// Select picks a uniformly random author, then a uniformly random quote by
// that author. An empty document or an author without quotes is a content error.
func (s *QuoteSource) Select(rng Rand) (SelectedQuote, error) {
	if s == nil || len(s.Authors) == 0 {
		return SelectedQuote{}, NewContentError(quoteSourceName, "no authors")
	}

	author := s.Authors[rng.IntN(len(s.Authors))]
	if len(author.Quotes) == 0 {
		return SelectedQuote{}, NewContentError(quoteSourceName, "author "+author.Name+" has no quotes")
	}

	return SelectedQuote{
		Info:   s.Info,
		Author: author.Name,
		Text:   author.Quotes[rng.IntN(len(author.Quotes))],
	}, nil
}
