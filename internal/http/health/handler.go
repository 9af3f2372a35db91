// Package health serves the liveness and readiness probes used by the orchestrator.
package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/janisto/k8s-greeting/internal/platform/timeutil"
)

// Response is the payload for the probe endpoints.
type Response struct {
	Status    string        `json:"status"`
	Timestamp timeutil.Time `json:"timestamp"`
}

// Handler is the liveness probe: it answers 200 whenever the process can serve HTTP.
func Handler(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusOK, "healthy")
}

// Readiness gates traffic. It starts not ready; the server marks it ready once listening
// and not ready again when shutdown begins so the orchestrator stops routing before drain.
type Readiness struct {
	ready atomic.Bool
}

// SetReady records whether the process should receive traffic.
func (r *Readiness) SetReady(ready bool) {
	r.ready.Store(ready)
}

// Ready reports the current readiness.
func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

// Handler answers 200 when ready and 503 otherwise.
func (r *Readiness) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if !r.Ready() {
			write(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		write(w, http.StatusOK, "ready")
	}
}

func write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Status: msg, Timestamp: timeutil.Now()})
}
