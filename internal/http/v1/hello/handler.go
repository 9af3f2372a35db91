package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/k8s-greeting/internal/platform/logging"
)

// Path is the route of the greeting endpoint.
const Path = "/api/hello"

// Handler answers greeting requests with the message resolved at startup.
type Handler struct {
	message string
}

// New returns a Handler serving message.
func New(message string) *Handler {
	return &Handler{message: message}
}

// Register wires hello routes into the provided API router.
func Register(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Get the greeting",
		Description: "Returns the configured greeting message. Safe to use as a readiness probe.",
		Tags:        []string{"Hello"},
	}, h.get)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", Path))
	return &GetOutput{Body: NewGreeting(h.message)}, nil
}
