// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios.
package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist,
// such as accepting a request ID that matches no request. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
