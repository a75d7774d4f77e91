// Package acl implements the Anti-Corruption Layer for the quotes content host.
//
// The ACL sits between the domain and the raw HTTP client. It owns the wire
// shape of the quotes document and translates it into domain.QuoteSource, so
// a change in the published JSON never leaks past this package.
//
// # Error Translation
//
// Every downstream failure is reported as one of two domain error kinds:
//
//	Transport error / open circuit  → domain.ErrUnavailable
//	Non-2xx status                  → domain.ErrUnavailable
//	Unreadable body                 → domain.ErrUnavailable
//	Invalid JSON / missing fields   → domain.ErrMalformed
//
// Callers distinguish them with domain.IsUnavailable and domain.IsMalformed.
//
// # Usage
//
//	client, _ := clients.New(&clients.Config{
//	    BaseURL:     cfg.Services.Quotes.BaseURL,
//	    ServiceName: cfg.Services.Quotes.Name,
//	})
//	source := acl.NewQuoteSourceClient(acl.QuoteSourceConfig{
//	    Client: client,
//	    Path:   cfg.Services.Quotes.Path,
//	})
//	doc, err := source.FetchQuoteSource(ctx)
//
// The external DTOs (quoteSourceDTO, authorDTO) are unexported and never
// leave the package.
package acl
