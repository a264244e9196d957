// Package services defines the business logic of the items API: the request
// router, the fault injector, and the pipeline that composes them.
// This file centralizes service-level error values so that callers can check
// them with errors.Is and translate them at the transport layer.
package services

import "errors"

var (
	// ErrMalformedBody is returned when a POST body is present but is not
	// valid JSON. The router never turns it into a success response.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidProbability is returned when a fault probability falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("fault probability must be between 0 and 1")
)
