// Package clients provides HTTP client adapters for downstream services.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// They are infrastructure failures; the ACL translates them to domain errors.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open and the
	// request was not attempted.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps transport failures: DNS, connect, TLS, timeout.
	// The underlying error is wrapped as well.
	ErrRequestFailed = errors.New("downstream request failed")
)
