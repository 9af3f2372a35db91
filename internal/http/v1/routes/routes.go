// Package routes wires the business endpoints into the huma API.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/k8s-greeting/internal/config"
	"github.com/janisto/k8s-greeting/internal/http/v1/hello"
)

// Register wires all API routes into the provided API router.
func Register(api huma.API, cfg config.Config) {
	hello.Register(api, hello.New(cfg.Message))
}
