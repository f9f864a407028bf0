package offline

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BestFunc reports the current best score.
type BestFunc func() int

// NewServer builds the HTTP handler for the web bundle. best may be nil.
func NewServer(w *Worker, best BestFunc, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		writeJSON(rw, http.StatusOK, map[string]string{
			"status": "ok",
			"cache":  w.Manifest().Version,
		})
	})

	r.Get("/api/best", func(rw http.ResponseWriter, _ *http.Request) {
		n := 0
		if best != nil {
			n = best()
		}
		writeJSON(rw, http.StatusOK, map[string]int{"best": n})
	})

	r.Handle("/*", w)
	return r
}

// requestLogger logs one line per request with the chi request id.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"cache", ww.Header().Get("X-Cache"),
				"duration", time.Since(start),
			)
		})
	}
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	json.NewEncoder(rw).Encode(v) //nolint:errcheck // client went away
}
