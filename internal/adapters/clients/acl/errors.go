package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quote-fulfillment/internal/adapters/clients"
	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
)

// maxErrorBodyBytes bounds how much of an error response is inspected.
const maxErrorBodyBytes = 4 << 10

// ErrorResponse represents a JSON error body returned by a content host.
// It supports both nested format (error.code/message) and flat format (code/message).
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail contains error information from external services.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the error code from either nested or top-level format.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns the error message from either nested or top-level format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty, not JSON, or carries no code or message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBodyBytes)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed downstream call to a domain error.
//
// resp may be nil when clientErr is set. A 2xx response with no client error
// maps to nil. Everything else is a fetch failure and maps to
// domain.UnavailableError; the reason names the operation and, when the body
// carries one, the host's own message.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if statusOK(resp.StatusCode) {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	message := defaultMessageForStatus(resp.StatusCode, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = fmt.Sprintf("%s: %s", message, errResp.GetMessage())
	}

	return domain.NewUnavailableError(serviceName, message)
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s timed out", operation))

	case errors.Is(err, context.Canceled):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s canceled", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return fmt.Sprintf("%s: document not found (HTTP %d)", operation, status)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("%s: access denied (HTTP %d)", operation, status)
	case http.StatusTooManyRequests:
		return fmt.Sprintf("%s: rate limit exceeded (HTTP %d)", operation, status)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Sprintf("%s: service temporarily unavailable (HTTP %d)", operation, status)
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// statusOK reports whether status is a 2xx code.
func statusOK(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
