package acl

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
	"github.com/jsamuelsen/quote-fulfillment/internal/platform/logging"
)

// quoteSourceName identifies the quotes document in content errors.
const quoteSourceName = "quote source"

// QuoteSourceConfig contains configuration for the quote source client.
type QuoteSourceConfig struct {
	// Client is the HTTP client to use for requests.
	// Its BaseURL should point at the content host.
	Client *clients.Client

	// Path is the document path on the content host.
	Path string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteSourceClient implements ports.QuoteSource over HTTP.
// It also implements ports.HealthChecker.
type QuoteSourceClient struct {
	BaseAdapter

	path   string
	logger *slog.Logger
}

// NewQuoteSourceClient creates a new quote source adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteSourceClient(cfg QuoteSourceConfig) *QuoteSourceClient {
	if cfg.Client == nil {
		panic("QuoteSourceClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteSourceClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		path:        cfg.Path,
		logger:      logger,
	}
}

// quoteSourceDTO is the published wire shape of the quotes document.
// Pointer fields distinguish an absent key from an empty value.
type quoteSourceDTO struct {
	Info *string     `json:"info" validate:"required"`
	Data []authorDTO `json:"data" validate:"required,min=1,dive"`
}

type authorDTO struct {
	Author *string  `json:"author" validate:"required"`
	Quotes []string `json:"quotes" validate:"required,min=1,dive,required"`
}

// FetchQuoteSource downloads and parses the quotes document with a single request.
// Implements ports.QuoteSource.
func (c *QuoteSourceClient) FetchQuoteSource(ctx context.Context) (*domain.QuoteSource, error) {
	c.logger.Log(ctx, logging.LevelTrace, "fetching quote source", slog.String("path", c.path))

	body, err := c.Get(ctx, c.path, "fetch quote source")
	if err != nil {
		return nil, err
	}

	source, err := ParseQuoteSource(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated quote source",
		slog.Int("authors", len(source.Authors)),
		slog.Int("bytes", len(body)))

	return source, nil
}

// ParseQuoteSource decodes and validates a quotes document.
// Every author must have a name and at least one quote; otherwise, including
// for an empty object, a domain.ContentError is returned.
func ParseQuoteSource(r io.Reader) (*domain.QuoteSource, error) {
	dto, err := DecodeDocument[quoteSourceDTO](r, quoteSourceName)
	if err != nil {
		return nil, err
	}

	authors, err := TranslateSlice(dto.Data, translateAuthor)
	if err != nil {
		return nil, err
	}

	return &domain.QuoteSource{
		Info:    *dto.Info,
		Authors: authors,
	}, nil
}

func translateAuthor(ext *authorDTO) (domain.Author, error) {
	return domain.Author{
		Name:   *ext.Author,
		Quotes: ext.Quotes,
	}, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteSourceClient) Name() string {
	return c.ServiceName()
}

// Check reports the content host as unhealthy while the circuit is open,
// otherwise it issues a HEAD request for the document.
// Implements ports.HealthChecker.
func (c *QuoteSourceClient) Check(ctx context.Context) error {
	if c.Client().CircuitState() == clients.StateOpen {
		return MapHTTPError(nil, clients.ErrCircuitOpen, c.ServiceName(), "check quote source")
	}

	return c.Head(ctx, c.path, "check quote source")
}
