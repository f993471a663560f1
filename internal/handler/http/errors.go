package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches the service layer. Matched in the error mapper with [errors.Is].
var (
	// errInvalidJSON is raised when the request body cannot be decoded.
	errInvalidJSON = errors.New("invalid JSON was passed")

	// errInvalidLogFilter is raised when the status or limit query parameter
	// of the logs endpoint is not a valid integer.
	errInvalidLogFilter = errors.New("invalid log filter parameters")
)
