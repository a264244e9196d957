package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// securedItems serves a JSON items body behind SecurityHeaders. pre runs
// before the middleware and may seed response headers.
func securedItems(opt SecurityOptions, pre gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if pre != nil {
		r.Use(pre)
	}
	r.Use(SecurityHeaders(opt))
	r.GET("/items", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"items":[]}`))
	})
	return r
}

func getItems(r http.Handler, tweak func(*http.Request)) http.Header {
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if tweak != nil {
		tweak(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header()
}

func TestSecurityHeaders_DefaultsOnly(t *testing.T) {
	h := getItems(securedItems(SecurityOptions{}, nil), nil)

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for k, v := range want {
		if got := h.Get(k); got != v {
			t.Errorf("%s=%q; want %q", k, got, v)
		}
	}
	for _, k := range []string{
		"Permissions-Policy", "X-Permitted-Cross-Domain-Policies",
		"Cache-Control", "Pragma", "Expires",
		"Strict-Transport-Security", "Access-Control-Expose-Headers",
	} {
		if got := h.Get(k); got != "" {
			t.Errorf("unexpected %s=%q", k, got)
		}
	}
}

func TestSecurityHeaders_ExposeRequestID(t *testing.T) {
	cases := []struct {
		name     string
		existing string
		want     string
	}{
		{"none yet", "", "X-Request-ID"},
		{"appended", "Content-Length", "Content-Length, X-Request-ID"},
		{"already present", "X-Request-ID, Content-Length", "X-Request-ID, Content-Length"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pre := func(c *gin.Context) {
				c.Header("X-Request-ID", "rid-1")
				if tc.existing != "" {
					c.Header("Access-Control-Expose-Headers", tc.existing)
				}
				c.Next()
			}
			h := getItems(securedItems(SecurityOptions{}, pre), nil)
			if got := h.Get("Access-Control-Expose-Headers"); got != tc.want {
				t.Fatalf("expose=%q; want %q", got, tc.want)
			}
		})
	}
}

func TestSecurityHeaders_OptionalGroups(t *testing.T) {
	r := securedItems(SecurityOptions{NoStore: true, EnablePolicy: true}, nil)
	h := getItems(r, nil)

	if h.Get("X-Permitted-Cross-Domain-Policies") != "none" || h.Get("Permissions-Policy") == "" {
		t.Fatalf("policy headers missing: %v", h)
	}
	if h.Get("Cache-Control") != "no-store" || h.Get("Pragma") != "no-cache" || h.Get("Expires") != "0" {
		t.Fatalf("no-store headers missing: %v", h)
	}
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	cases := []struct {
		name   string
		opt    SecurityOptions
		tweak  func(*http.Request)
		expect string
	}{
		{
			name:   "tls with custom age",
			opt:    SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour},
			tweak:  func(r *http.Request) { r.TLS = &tls.ConnectionState{} },
			expect: "max-age=86400; includeSubDomains; preload",
		},
		{
			name:   "forwarded proto with default age",
			opt:    SecurityOptions{EnableHSTS: true},
			tweak:  func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") },
			expect: "max-age=15552000; includeSubDomains; preload",
		},
		{
			name:   "plain http",
			opt:    SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour},
			expect: "",
		},
		{
			name:   "disabled",
			opt:    SecurityOptions{HSTSMaxAge: time.Hour},
			tweak:  func(r *http.Request) { r.TLS = &tls.ConnectionState{} },
			expect: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := getItems(securedItems(tc.opt, nil), tc.tweak)
			if got := h.Get("Strict-Transport-Security"); got != tc.expect {
				t.Fatalf("HSTS=%q; want %q", got, tc.expect)
			}
		})
	}
}

func Test_isHTTPS(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	viaTLS := httptest.NewRequest(http.MethodGet, "/", nil)
	viaTLS.TLS = &tls.ConnectionState{}
	viaProxy := httptest.NewRequest(http.MethodGet, "/", nil)
	viaProxy.Header.Set("X-Forwarded-Proto", "https")

	if isHTTPS(plain) || !isHTTPS(viaTLS) || !isHTTPS(viaProxy) {
		t.Fatalf("isHTTPS: plain=%v tls=%v proxy=%v", isHTTPS(plain), isHTTPS(viaTLS), isHTTPS(viaProxy))
	}
}
