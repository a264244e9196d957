// Package handlers defines HTTP-layer error codes used across all endpoints.
//
// Codes are PascalCase and match the "error" field produced by the items
// router itself (for example MethodNotAllowed), so clients see one error
// taxonomy whether a response came from the router, from middleware, or
// from the fault injector.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "error": "NotFound",
//	  "message": "route not found"
//	}
package handlers

const (
	ErrCodeBadRequest       = "BadRequest"
	ErrCodeNotFound         = "NotFound"
	ErrCodeMethodNotAllowed = "MethodNotAllowed"
	ErrCodePayloadTooLarge  = "PayloadTooLarge"
	ErrCodeRateLimited      = "TooManyRequests"
	ErrCodeInternal         = "InternalServerError"
)
