package adapter

import "errors"

// Sentinel errors mirroring the server's HTTP failure classes. Callers match
// them with [errors.Is]; the wrapped text carries the server's error body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
