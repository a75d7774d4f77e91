package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
)

// maxDocumentBytes bounds the size of a downloaded document.
const maxDocumentBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in service-specific adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET request and returns the full response body.
// Transport failures, non-2xx statuses and body read errors map to
// domain.UnavailableError. A body larger than maxDocumentBytes is a
// domain.ContentError.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) ([]byte, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := MapHTTPError(resp, nil, a.serviceName, operation); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, MapHTTPError(nil, fmt.Errorf("reading body: %w", err), a.serviceName, operation)
	}

	if len(body) > maxDocumentBytes {
		return nil, domain.NewContentError(a.serviceName,
			fmt.Sprintf("document exceeds %d bytes", maxDocumentBytes))
	}

	return body, nil
}

// Head performs a HEAD request and maps any failure to a domain error.
func (a *BaseAdapter) Head(ctx context.Context, path, operation string) error {
	resp, err := a.client.Head(ctx, path)
	if err != nil {
		return MapHTTPError(nil, err, a.serviceName, operation)
	}
	defer func() { _ = resp.Body.Close() }()

	return MapHTTPError(resp, nil, a.serviceName, operation)
}

// DecodeDocument decodes a single JSON document into T and validates it
// against T's validate tags. Any failure is a domain.ContentError for source.
func DecodeDocument[T any](body io.Reader, source string) (*T, error) {
	if body == nil {
		return nil, domain.NewContentError(source, "empty body")
	}

	dec := json.NewDecoder(body)

	var result T
	if err := dec.Decode(&result); err != nil {
		return nil, domain.NewContentError(source, "decoding: "+err.Error())
	}

	// The document must be a single JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, domain.NewContentError(source, "trailing data after document")
	}

	if err := validate.Struct(&result); err != nil {
		return nil, domain.NewContentError(source, describeValidation(err))
	}

	return &result, nil
}

// describeValidation flattens validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		parts = append(parts, field+": "+rule)
	}

	return strings.Join(parts, "; ")
}

// Translator converts an external DTO to a domain value.
// It returns a domain error if the external data is unusable.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies a translator function to a slice of external DTOs.
// If any translation fails, returns the first error encountered.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}
