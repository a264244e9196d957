// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the scrubbing used by Logger so that access logs
// never carry obvious PII taken from query strings or headers. Request and
// response bodies are never logged.
package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// RedactOptions configures additional scrub behavior for Logger.
//
// MaskHeaders specifies extra HTTP header names whose values will be fully
// replaced with "[REDACTED]". Matching is case-insensitive and merged with
// built-in sensitive headers ("Authorization", "Cookie", "Set-Cookie").
type RedactOptions struct {
	MaskHeaders []string
}

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits only, so hex runs inside UUIDs never match.
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// redactor scrubs identifiers from free text and masks sensitive headers.
type redactor struct {
	maskHeaders map[string]struct{}
}

func newRedactor(opts RedactOptions) *redactor {
	mask := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			mask[h] = struct{}{}
		}
	}
	return &redactor{maskHeaders: mask}
}

// scrub replaces UUIDs, emails and phone numbers in s. UUIDs go first so
// the loose phone pattern cannot eat their digit groups.
func (r *redactor) scrub(s string) string {
	if s == "" {
		return s
	}
	out := uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	out = emailRE.ReplaceAllString(out, "[REDACTED:email]")
	out = phoneRE.ReplaceAllString(out, "[REDACTED:phone]")
	return out
}

// headers returns a flattened, scrubbed copy of h.
func (r *redactor) headers(h http.Header) map[string]string {
	safe := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := r.maskHeaders[strings.ToLower(k)]; ok {
			safe[k] = "[REDACTED]"
			continue
		}
		safe[k] = r.scrub(strings.Join(vv, ", "))
	}
	return safe
}
