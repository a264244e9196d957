// Package domain defines the transport-neutral request and response shapes
// handled by the items API, together with the canned payloads it returns.
//
// A Request is built per call by a transport adapter (API Gateway event or
// Gin context) and discarded after the Response has been written back. None
// of these types carry state across requests.
package domain

import "encoding/json"

// HTTP methods recognized by the router. Matching is exact.
const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

// Fixed response texts.
const (
	MessageListed   = "GET request successful"
	MessageReceived = "POST request successful"

	ErrorMethodNotAllowed    = "MethodNotAllowed"
	MessageMethodNotAllowed  = "Unsupported HTTP method"
	ErrorBadRequest          = "BadRequest"
	MessageSimulatedClient   = "Simulated client error"
	ErrorInternalServerError = "InternalServerError"
	MessageSimulatedServer   = "Simulated server error"
)

// items is the illustrative, immutable item list returned on GET.
var items = [...]string{"item1", "item2"}

// ItemList returns a fresh copy of the fixed item list so callers can never
// mutate the shared sequence.
func ItemList() []string {
	out := make([]string, len(items))
	copy(out, items[:])
	return out
}

// Request is the structured form of an inbound call.
//
// Fields:
//   - Method: raw HTTP verb; "" means the gateway did not supply one.
//   - Body: raw request text; nil means the body was absent.
//   - Base64: Body is base64 text as delivered by the gateway.
type Request struct {
	Method string
	Body   *string
	Base64 bool
}

// HasBody reports whether the request carries a non-empty body.
func (r Request) HasBody() bool { return r.Body != nil && *r.Body != "" }

// Response is the structured reply returned to the gateway. Body is JSON text.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ListPayload is the body of a successful GET.
type ListPayload struct {
	Message string   `json:"message" example:"GET request successful"`
	Items   []string `json:"items" example:"item1,item2"`
}

// EchoPayload is the body of a successful POST. Received holds the caller's
// JSON value exactly as sent, modulo insignificant whitespace. It is spliced
// into the response verbatim, never re-encoded.
type EchoPayload struct {
	Message  string          `json:"message" example:"POST request successful"`
	Received json.RawMessage `json:"received" swaggertype:"object"`
}

// ErrorPayload is the body shared by every error response, genuine or
// injected.
type ErrorPayload struct {
	Error   string `json:"error" example:"MethodNotAllowed"`
	Message string `json:"message" example:"Unsupported HTTP method"`
}
