package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tbourn/go-items-api/internal/domain"
)

// emptyObject is echoed when a POST arrives without a body.
var emptyObject = []byte("{}")

// Router dispatches a request on its HTTP method to one of three canned
// responses. It holds no state; a single value is safe for concurrent use.
type Router struct{}

// NewRouter returns a ready Router.
func NewRouter() *Router { return &Router{} }

// Handle implements Handler.
//
//   - GET   -> 200 with the fixed item list
//   - POST  -> 201 echoing the JSON body under "received" ({} when absent)
//   - other -> 405 MethodNotAllowed
//
// A POST body that is not valid UTF-8 JSON (after base64 decoding, when
// flagged) yields an error wrapping ErrMalformedBody and no response.
func (r *Router) Handle(_ context.Context, req domain.Request) (domain.Response, error) {
	switch req.Method {
	case domain.MethodGet:
		return render(http.StatusOK, domain.ListPayload{
			Message: domain.MessageListed,
			Items:   domain.ItemList(),
		})

	case domain.MethodPost:
		received, err := decodeBody(req)
		if err != nil {
			return domain.Response{}, err
		}
		return renderEcho(domain.EchoPayload{
			Message:  domain.MessageReceived,
			Received: received,
		})

	default:
		return render(http.StatusMethodNotAllowed, domain.ErrorPayload{
			Error:   domain.ErrorMethodNotAllowed,
			Message: domain.MessageMethodNotAllowed,
		})
	}
}

// decodeBody validates the raw body and returns it compacted, keeping the
// caller's key order, duplicate keys and number formatting intact.
func decodeBody(req domain.Request) ([]byte, error) {
	if !req.HasBody() {
		return emptyObject, nil
	}
	raw := []byte(*req.Body)
	if req.Base64 {
		dec, err := base64.StdEncoding.DecodeString(*req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedBody, err)
		}
		if len(dec) == 0 {
			return emptyObject, nil
		}
		raw = dec
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrMalformedBody)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformedBody)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return buf.Bytes(), nil
}

// render serializes payload into a Response. Bodies are served as
// application/json, so HTML characters are left unescaped.
func render(status int, payload any) (domain.Response, error) {
	b, err := json.MarshalNoEscape(payload)
	if err != nil {
		return domain.Response{}, fmt.Errorf("encode response: %w", err)
	}
	return domain.Response{StatusCode: status, Body: string(b)}, nil
}

// renderEcho writes the POST envelope with Received spliced in as-is. The
// encoder escapes the output of json.Marshaler values, which would rewrite
// <, > and & inside the caller's value.
func renderEcho(p domain.EchoPayload) (domain.Response, error) {
	msg, err := json.MarshalNoEscape(p.Message)
	if err != nil {
		return domain.Response{}, fmt.Errorf("encode response: %w", err)
	}
	var b bytes.Buffer
	b.Grow(len(`{"message":,"received":}`) + len(msg) + len(p.Received))
	b.WriteString(`{"message":`)
	b.Write(msg)
	b.WriteString(`,"received":`)
	b.Write(p.Received)
	b.WriteByte('}')
	return domain.Response{StatusCode: http.StatusCreated, Body: b.String()}, nil
}
