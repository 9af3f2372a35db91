package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withProjectID(t *testing.T, id string) {
	t.Helper()
	orig := projectID
	projectID = func() string { return id }
	t.Cleanup(func() { projectID = orig })
}

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tea", nil)
	req = req.WithContext(WithLogger(req.Context(), zap.New(core), ""))
	access.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status 418, got %v", fields["status"])
	}
	if fields["path"] != "/tea" {
		t.Fatalf("expected path /tea, got %v", fields["path"])
	}
	if fields["method"] != http.MethodGet {
		t.Fatalf("expected method GET, got %v", fields["method"])
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatal("expected duration field")
	}
}

func TestAccessLoggerSkipsProbePaths(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	access := AccessLogger("/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/api/hello"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req = req.WithContext(WithLogger(req.Context(), zap.New(core), ""))
		access.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["path"] != "/api/hello" {
		t.Fatalf("expected only /api/hello to be logged, got %v", entries[0].ContextMap()["path"])
	}
}

func TestRequestLoggerStoresCorrelationID(t *testing.T) {
	withProjectID(t, "")

	var got string
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if LoggerFromContext(r.Context()) == nil {
			t.Fatal("expected non-nil logger in context")
		}
		got = TraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-abc"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "req-abc" {
		t.Fatalf("expected correlation req-abc, got %q", got)
	}
}

func TestRequestLoggerPrefersTraceResource(t *testing.T) {
	withProjectID(t, "demo")

	var got string
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceparentHeader, validTraceparent)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-abc"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "projects/demo/traces/ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("unexpected correlation: %q", got)
	}
}
