// Package respond renders RFC 9457 problem details for failures that never
// reach a huma operation: unknown routes, unsupported methods, and panics.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/k8s-greeting/internal/platform/logging"
)

const (
	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"

	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"
)

// probedMethods are checked against the routing tree to build the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// NotFoundHandler emits a 404 problem response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound, nil)
	}
}

// MethodNotAllowedHandler emits a 405 problem response with an Allow header listing the routed methods.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method), nil)
	}
}

// Recoverer converts panics into 500 problem responses.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection, and nothing is
// written when the handler already sent headers.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				err = fmt.Errorf("%w\n%s", err, debug.Stack())
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err)
					return
				}
				writeProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr, err)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter records whether the response has been started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string, cause error) {
	problem := huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
	logProblem(r, status, detail, cause)

	h := w.Header()
	ensureVary(h, "Origin", "Accept")

	if selectFormat(r.Header.Get("Accept")) {
		body, err := cbor.Marshal(problem)
		if err != nil {
			applog.LogError(r.Context(), "failed to encode problem", err)
			return
		}
		h.Set("Content-Type", contentTypeProblemCBOR)
		w.WriteHeader(status)
		_, _ = w.Write(body)
		return
	}

	h.Set("Content-Type", contentTypeProblemJSON)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(problem); err != nil {
		applog.LogError(r.Context(), "failed to write problem", err)
	}
}

func logProblem(r *http.Request, status int, detail string, cause error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if status >= http.StatusInternalServerError {
		applog.LogError(r.Context(), detail, cause, fields...)
		return
	}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	applog.LogWarn(r.Context(), detail, fields...)
}

// ensureVary appends each value to the Vary header unless already listed.
func ensureVary(h http.Header, values ...string) {
	present := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				present[strings.ToLower(p)] = struct{}{}
			}
		}
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		h.Add("Vary", v)
	}
}

// allowedMethods asks chi which methods would match the current path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
	}
	if routePath == "" {
		routePath = r.URL.Path
	}
	if routePath == "" {
		routePath = "/"
	}

	allowed := make([]string, 0, len(probedMethods))
	for _, method := range probedMethods {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
