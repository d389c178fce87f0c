package api

import "errors"

// Sentinel kinds for API errors. Handlers return ErrInternal on the wire
// instead of leaking storage error details to clients.
var (
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")
)
