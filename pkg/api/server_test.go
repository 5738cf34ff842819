package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cubetex/pkg/cache"
	"github.com/matzehuels/cubetex/pkg/core/grid"
	specio "github.com/matzehuels/cubetex/pkg/io"
	"github.com/matzehuels/cubetex/pkg/pipeline"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := pipeline.NewRunner(c, nil, nil)
	ts := httptest.NewServer(NewServer(runner, nil, opts...).Handler())
	t.Cleanup(func() {
		ts.Close()
		runner.Close()
	})
	return ts
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func flatRequest() map[string]any {
	return map[string]any{
		"spec": &specio.Spec{Matrix: grid.Grid{{"1", "2"}, {"3", "4"}}},
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer(t)

	req := flatRequest()
	req["formats"] = []string{"tikz", "json"}
	req["grid_color"] = "gray"

	resp := post(t, ts.URL+"/v1/render", req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("request id %q is not a uuid", resp.Header.Get(RequestIDHeader))
	}

	out := decode[renderResponse](t, resp)
	if out.Kind != "flat" || out.Cached {
		t.Errorf("kind, cached = %s, %v", out.Kind, out.Cached)
	}
	if out.Shape != (grid.Shape3{X: 1, Y: 2, Z: 2}) {
		t.Errorf("shape = %+v", out.Shape)
	}
	if !strings.Contains(out.Artifacts["tikz"], `\def\gridcol{gray}`) {
		t.Errorf("tikz artifact missing grid color:\n%s", out.Artifacts["tikz"])
	}
	if _, ok := out.Artifacts["json"]; !ok {
		t.Error("json artifact missing")
	}
	if out.RequestID != resp.Header.Get(RequestIDHeader) {
		t.Errorf("body request id %q != header", out.RequestID)
	}

	// Same request is served from the cache
	again := decode[renderResponse](t, post(t, ts.URL+"/v1/render", req))
	if !again.Cached {
		t.Error("second render should be cached")
	}
}

func TestRenderRaw(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render?raw=tex", flatRequest())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-tex") {
		t.Errorf("content type = %s", ct)
	}
	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.String(), `\documentclass[tikz, margin=0mm]{standalone}`) {
		t.Errorf("raw body is not a document:\n%s", body.String())
	}

	bad := post(t, ts.URL+"/v1/render?raw=pdf", flatRequest())
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("raw=pdf status = %d", bad.StatusCode)
	}

	dl := post(t, ts.URL+"/v1/render?raw=tikz&filename=out/matrix.tikz", flatRequest())
	if dl.StatusCode != http.StatusOK {
		t.Fatalf("download status = %d", dl.StatusCode)
	}
	if cd := dl.Header.Get("Content-Disposition"); cd != `attachment; filename=matrix.tikz` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	traversal := post(t, ts.URL+"/v1/render?raw=tex&filename=../x.tex", flatRequest())
	if traversal.StatusCode != http.StatusBadRequest {
		t.Errorf("traversal status = %d", traversal.StatusCode)
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t, WithMaxBodyBytes(512))

	inconsistent := map[string]any{
		"spec": &specio.Spec{
			Front: grid.Uniform(2, 2, ""),
			Top:   grid.Uniform(2, 3, ""),
			Side:  grid.Uniform(2, 2, ""),
		},
	}
	big := map[string]any{
		"spec": &specio.Spec{Matrix: grid.Uniform(40, 40, "label")},
	}

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed", `{"spec":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", `{"spec": {}, "colour": "red"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"no spec", `{"formats": ["tex"]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad kind", `{"spec": {"kind": "sphere"}}`, http.StatusBadRequest, "INVALID_KIND"},
		{"bad format", `{"spec": {}, "formats": ["svg"]}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"inconsistent", inconsistent, http.StatusBadRequest, "INCONSISTENT_CUBOID"},
		{"too large", big, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/render", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			out := decode[errorResponse](t, resp)
			if out.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", out.Code, tt.code, out.Message)
			}
			if out.RequestID == "" {
				t.Error("error response has no request id")
			}
		})
	}
}

func TestGetEndpoints(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path   string
		status int
		check  func(t *testing.T, body []byte)
	}{
		{"/healthz", http.StatusOK, func(t *testing.T, body []byte) {
			if !strings.Contains(string(body), `"ok"`) {
				t.Errorf("body = %s", body)
			}
		}},
		{"/version", http.StatusOK, func(t *testing.T, body []byte) {
			if !strings.Contains(string(body), `"version"`) {
				t.Errorf("body = %s", body)
			}
		}},
		{"/v1/example", http.StatusOK, func(t *testing.T, body []byte) {
			spec, err := specio.ReadSpec(bytes.NewReader(body), specio.FormatJSON)
			if err != nil {
				t.Fatalf("example is not a spec: %v", err)
			}
			if spec.ResolvedKind() != "cuboid" {
				t.Errorf("kind = %s", spec.ResolvedKind())
			}
		}},
		{"/nope", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body bytes.Buffer
			_, _ = body.ReadFrom(resp.Body)
			if tt.check != nil {
				tt.check(t, body.Bytes())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("request id = %s, want %s", got, id)
	}

	// Malformed ids are replaced
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get(RequestIDHeader); got == "not-a-uuid" || got == "" {
		t.Errorf("malformed id kept: %q", got)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	s := NewServer(pipeline.NewRunner(nil, nil, nil), nil, WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	// Wait for the listener
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
