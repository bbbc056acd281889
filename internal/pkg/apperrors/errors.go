package apperrors

import "errors"

// Standard application errors
var (
	// ErrChainLookupFailed is returned when the chain registry is unreachable
	// or answers with a non-success status.
	ErrChainLookupFailed = errors.New("chain lookup failed")

	// ErrNoExplorerAvailable is returned when a chain record carries no
	// usable explorer entry.
	ErrNoExplorerAvailable = errors.New("no explorer available for chain")

	// ErrUpstreamUnavailable is returned when the explorer base URL for a
	// chain could not be resolved.
	ErrUpstreamUnavailable = errors.New("explorer upstream unavailable")

	// ErrRequestFailed is returned when the explorer API answers with a
	// non-success status.
	ErrRequestFailed = errors.New("explorer request failed")

	// ErrDecodeFailed is returned when an explorer response body is not
	// valid JSON.
	ErrDecodeFailed = errors.New("failed to decode explorer response")

	// ErrInvalidInput is returned when the input provided by the client is invalid.
	ErrInvalidInput = errors.New("invalid input provided")
)
