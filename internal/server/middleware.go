package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/hypercube/pkg/observability"
)

// HeaderRunID carries the identifier of a request in responses.
const HeaderRunID = "X-Run-ID"

type ctxKey int

const runIDKey ctxKey = 0

// runID tags every request with a fresh identifier.
func runID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(HeaderRunID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), runIDKey, id)))
	})
}

// runIDFromContext returns the identifier set by runID, or "".
func runIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// observe reports every request to the registered HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

// LogHooks logs HTTP traffic. Install it with observability.SetHTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates HTTP hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnRequest(ctx context.Context, method, path string) {
	h.Logger.Debug("request", "run", runIDFromContext(ctx), "method", method, "path", path)
}

func (h *LogHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Info("response",
		"run", runIDFromContext(ctx),
		"method", method,
		"path", path,
		"status", status,
		"duration", d.Round(time.Microsecond))
}

func (h *LogHooks) OnError(ctx context.Context, method, path string, err error) {
	h.Logger.Warn("request failed", "run", runIDFromContext(ctx), "method", method, "path", path, "err", err)
}

var _ observability.HTTPHooks = (*LogHooks)(nil)
