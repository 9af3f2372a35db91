// Package openapi builds the huma API shared by the server and handler tests.
package openapi

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

// DocsPath serves the interactive API reference.
const DocsPath = "/api-docs"

// Config returns the huma configuration for this service.
//
// The default create hooks are dropped: they install the schema-link transformer,
// which adds a "$schema" property to every response body and a describedBy Link
// header. Response bodies here must contain only their declared fields.
func Config(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	return cfg
}

// New mounts a huma API on router and advertises CBOR alongside JSON for every operation.
// Huma negotiates by exact Accept match and falls back to JSON for anything else,
// including wildcards, which RFC 9110 section 12.4.1 permits.
func New(router chi.Router, title, version string) huma.API {
	api := humachi.New(router, Config(title, version))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, advertiseCBOR)
	return api
}

func advertiseCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
