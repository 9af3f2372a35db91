package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

type pingOutput struct {
	Body struct {
		Value string `json:"value"`
	}
}

func newTestAPI() (chi.Router, huma.API) {
	router := chi.NewRouter()
	api := New(router, "OpenAPITest", "test")
	huma.Get(api, "/ping", func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Value = "pong"
		return out, nil
	})
	return router, api
}

func TestResponseBodyHasNoSchemaField(t *testing.T) {
	router, _ := newTestAPI()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(body) != 1 || body["value"] != "pong" {
		t.Fatalf("expected only the declared field, got %v", body)
	}
	if link := resp.Header().Get("Link"); link != "" {
		t.Fatalf("expected no schema Link header, got %q", link)
	}
}

func TestOperationAdvertisesCBOR(t *testing.T) {
	_, api := newTestAPI()

	op := api.OpenAPI().Paths["/ping"].Get
	if op == nil {
		t.Fatal("expected GET /ping operation")
	}
	resp, ok := op.Responses["200"]
	if !ok {
		t.Fatalf("expected 200 response, got %v", op.Responses)
	}
	if _, ok := resp.Content["application/cbor"]; !ok {
		t.Fatalf("expected application/cbor content, got %v", resp.Content)
	}
}

func TestDocsPathServed(t *testing.T) {
	router, _ := newTestAPI()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected docs at %s, got %d", DocsPath, resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected OpenAPI document, got %d", resp.Code)
	}
}
