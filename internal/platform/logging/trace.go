package logging

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
// Example: 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

// projectID is swapped in tests.
var projectID = sync.OnceValue(resolveProjectID)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	return traceContext{traceID: m[2], spanID: m[3], sampled: m[4] == "01"}, true
}

func (tc traceContext) resource(project string) string {
	return fmt.Sprintf("projects/%s/traces/%s", project, tc.traceID)
}

func (tc traceContext) fields(project string) []zap.Field {
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", tc.resource(project)),
		zap.String("logging.googleapis.com/spanId", tc.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", tc.sampled),
	}
}

// requestLogger derives a logger carrying trace fields (when a project is known) and the request ID.
// The returned correlation ID is the trace resource if available, otherwise the request ID.
func requestLogger(base *zap.Logger, header, project, requestID string) (*zap.Logger, string) {
	if base == nil {
		base = zap.NewNop()
	}
	var (
		fields      []zap.Field
		correlation string
	)
	if tc, ok := parseTraceparent(header); ok && project != "" {
		fields = tc.fields(project)
		correlation = tc.resource(project)
	}
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
		if correlation == "" {
			correlation = requestID
		}
	}
	if len(fields) == 0 {
		return base, correlation
	}
	return base.With(fields...), correlation
}

func resolveProjectID() string {
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT", "PROJECT_ID"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
