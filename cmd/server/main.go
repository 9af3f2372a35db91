package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/k8s-greeting/internal/config"
	"github.com/janisto/k8s-greeting/internal/http/health"
	"github.com/janisto/k8s-greeting/internal/http/v1/routes"
	applog "github.com/janisto/k8s-greeting/internal/platform/logging"
	appmiddleware "github.com/janisto/k8s-greeting/internal/platform/middleware"
	"github.com/janisto/k8s-greeting/internal/platform/openapi"
	"github.com/janisto/k8s-greeting/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	healthPath = "/health"
	readyPath  = "/ready"
)

func newRouter(cfg config.Config, readiness *health.Readiness) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(openapi.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only deploy behind a trusted proxy or ingress.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(healthPath, readyPath),
		respond.Recoverer(),
	)

	router.Get(healthPath, health.Handler)
	router.Get(readyPath, readiness.Handler())

	api := openapi.New(router, "Greeting API", Version)
	routes.Register(api, cfg)
	return router
}

func main() {
	defer func() {
		if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	readiness := &health.Readiness{}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, readiness),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
	}
	if err := serve(srv, ln, readiness, shutdownSignals()); err != nil {
		applog.LogError(context.Background(), "server error", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func shutdownSignals() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	return stop
}

// serve runs srv on ln until it fails or stop fires, then drains in-flight requests.
// Readiness is withdrawn before shutdown so the orchestrator stops routing new traffic.
func serve(srv *http.Server, ln net.Listener, readiness *health.Readiness, stop <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()
	readiness.SetReady(true)
	applog.LogInfo(context.Background(), "server listening", zap.String("addr", ln.Addr().String()), zap.String("version", Version))

	select {
	case err := <-listenErr:
		readiness.SetReady(false)
		return err
	case sig := <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received", zap.String("signal", sig.String()))
	}
	readiness.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
		return err
	}
	return nil
}
