package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/tbourn/go-items-api/internal/domain"
)

func strptr(s string) *string { return &s }

func TestRouter_GET_ListsFixedItems(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "GET"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d; want 200", resp.StatusCode)
	}
	want := `{"message":"GET request successful","items":["item1","item2"]}`
	if resp.Body != want {
		t.Fatalf("body=%s; want %s", resp.Body, want)
	}
}

func TestRouter_GET_IgnoresBody(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "GET", Body: strptr("not json")})
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET with junk body: resp=%+v err=%v", resp, err)
	}
}

func TestRouter_GET_Idempotent(t *testing.T) {
	r := NewRouter()
	req := domain.Request{Method: "GET"}
	a, _ := r.Handle(context.Background(), req)
	b, _ := r.Handle(context.Background(), req)
	if a != b {
		t.Fatalf("responses differ:\n%+v\n%+v", a, b)
	}
}

func TestRouter_POST_EchoesBody(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(`{"k": "v"}`)})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d; want 201", resp.StatusCode)
	}
	var got struct {
		Message  string            `json:"message"`
		Received map[string]string `json:"received"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got.Message != "POST request successful" {
		t.Fatalf("message=%q", got.Message)
	}
	if !reflect.DeepEqual(got.Received, map[string]string{"k": "v"}) {
		t.Fatalf("received=%v", got.Received)
	}
}

func TestRouter_POST_WidgetScenario(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(`{"name":"widget"}`)})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := domain.Response{
		StatusCode: 201,
		Body:       `{"message":"POST request successful","received":{"name":"widget"}}`,
	}
	if resp != want {
		t.Fatalf("got %+v; want %+v", resp, want)
	}
}

func TestRouter_POST_PreservesKeyOrderAndNumbers(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{
		Method: "POST",
		Body:   strptr("{\n  \"z\": 1.50,\n  \"a\": [true, null, \"x y\"]\n}"),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := `{"message":"POST request successful","received":{"z":1.50,"a":[true,null,"x y"]}}`
	if resp.Body != want {
		t.Fatalf("body=%s; want %s", resp.Body, want)
	}
}

func TestRouter_POST_AbsentOrEmptyBodyDefaultsToEmptyObject(t *testing.T) {
	for name, body := range map[string]*string{"absent": nil, "empty": strptr("")} {
		resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: body})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		want := `{"message":"POST request successful","received":{}}`
		if resp.StatusCode != http.StatusCreated || resp.Body != want {
			t.Fatalf("%s: got %+v", name, resp)
		}
	}
}

func TestRouter_POST_NonObjectJSONIsEchoed(t *testing.T) {
	resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(`[1, 2]`)})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.Body != `{"message":"POST request successful","received":[1,2]}` {
		t.Fatalf("body=%s", resp.Body)
	}
}

func TestRouter_POST_MalformedBodyFailsLoudly(t *testing.T) {
	for _, body := range []string{"{", "not json", `{"a":1} trailing`, "   "} {
		resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(body)})
		if !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("body %q: err=%v; want ErrMalformedBody", body, err)
		}
		if resp != (domain.Response{}) {
			t.Fatalf("body %q: expected zero response, got %+v", body, resp)
		}
	}
}

func TestRouter_OtherMethods_405(t *testing.T) {
	want := `{"error":"MethodNotAllowed","message":"Unsupported HTTP method"}`
	for _, m := range []string{"DELETE", "PUT", "PATCH", "OPTIONS", "", "get", "post"} {
		resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: m})
		if err != nil {
			t.Fatalf("%q: %v", m, err)
		}
		if resp.StatusCode != http.StatusMethodNotAllowed || resp.Body != want {
			t.Fatalf("%q: got %+v", m, resp)
		}
	}
}

func TestRouter_POST_EchoIsByteExact(t *testing.T) {
	cases := map[string]struct{ body, received string }{
		"html characters":   {`{"a": "<b>&</b>"}`, `{"a":"<b>&</b>"}`},
		"escapes preserved": {`{"u":"é\n"}`, `{"u":"é\n"}`},
		"non-ascii":         {`{"name":"café"}`, `{"name":"café"}`},
		"duplicate keys":    {`{"k": 1, "k": 2}`, `{"k":1,"k":2}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(tc.body)})
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			want := `{"message":"POST request successful","received":` + tc.received + `}`
			if resp.StatusCode != http.StatusCreated || resp.Body != want {
				t.Fatalf("got %d %s; want %s", resp.StatusCode, resp.Body, want)
			}
		})
	}
}

func TestRouter_POST_InvalidUTF8IsMalformed(t *testing.T) {
	for _, body := range []string{"\"\xff\"", "{\"k\":\"a\xc3\"}"} {
		resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(body)})
		if !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("body %q: err=%v; want ErrMalformedBody", body, err)
		}
		if resp != (domain.Response{}) {
			t.Fatalf("body %q: expected zero response, got %+v", body, resp)
		}
	}
}

func TestRouter_POST_Base64Body(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"object", "eyJrIjoidiJ9", `{"message":"POST request successful","received":{"k":"v"}}`, false}, // {"k":"v"}
		{"invalid base64", "not base64!", "", true},
		{"decodes to invalid json", "e30s", "", true}, // {},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := NewRouter().Handle(context.Background(), domain.Request{Method: "POST", Body: strptr(tc.body), Base64: true})
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedBody) {
					t.Fatalf("err=%v; want ErrMalformedBody", err)
				}
				return
			}
			if err != nil || resp.Body != tc.want {
				t.Fatalf("got %q, %v; want %q", resp.Body, err, tc.want)
			}
		})
	}
}
