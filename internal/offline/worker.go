package offline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ocean-run/internal/storage"
)

// ErrNotCached is returned when an asset is not in the active cache.
var ErrNotCached = errors.New("offline: not cached")

// Cache stores asset bodies by version and path. *storage.Store satisfies it.
type Cache interface {
	CachePut(ctx context.Context, a storage.Asset) error
	CacheMatch(ctx context.Context, cache, path string) (*storage.Asset, error)
	CacheVersions(ctx context.Context) ([]string, error)
	CacheDelete(ctx context.Context, cache string) error
}

// Worker installs the manifest into the cache and answers requests from it.
type Worker struct {
	manifest Manifest
	cache    Cache
	origin   Origin
	logger   *log.Logger
}

// NewWorker creates a worker. logger may be nil.
func NewWorker(m Manifest, cache Cache, origin Origin, logger *log.Logger) *Worker {
	if logger == nil {
		logger = log.Default()
	}
	return &Worker{
		manifest: m,
		cache:    cache,
		origin:   origin,
		logger:   logger.WithPrefix("offline"),
	}
}

// Manifest returns the worker's manifest.
func (w *Worker) Manifest() Manifest {
	return w.manifest
}

// Install fetches every manifest asset from the origin and stores them
// under the manifest version. Nothing is stored unless every fetch succeeds.
func (w *Worker) Install(ctx context.Context) error {
	fetched := make([]storage.Asset, 0, len(w.manifest.Assets))
	for _, p := range w.manifest.Assets {
		res, err := w.origin.Fetch(ctx, p)
		if err != nil {
			return fmt.Errorf("offline: install %s: %w", w.manifest.Version, err)
		}
		fetched = append(fetched, storage.Asset{
			Cache:       w.manifest.Version,
			Path:        p,
			ContentType: res.ContentType,
			Body:        res.Body,
		})
	}

	for _, a := range fetched {
		if err := w.cache.CachePut(ctx, a); err != nil {
			return fmt.Errorf("offline: install %s: %w", w.manifest.Version, err)
		}
	}

	w.logger.Info("installed", "version", w.manifest.Version, "assets", len(fetched))
	return nil
}

// Activate deletes every cache version other than the manifest's.
func (w *Worker) Activate(ctx context.Context) error {
	versions, err := w.cache.CacheVersions(ctx)
	if err != nil {
		return fmt.Errorf("offline: activate: %w", err)
	}

	for _, v := range versions {
		if v == w.manifest.Version {
			continue
		}
		if err := w.cache.CacheDelete(ctx, v); err != nil {
			return fmt.Errorf("offline: activate: %w", err)
		}
		w.logger.Info("purged stale cache", "version", v)
	}
	return nil
}

// Match returns the cached asset for path, or ErrNotCached.
func (w *Worker) Match(ctx context.Context, path string) (*storage.Asset, error) {
	a, err := w.cache.CacheMatch(ctx, w.manifest.Version, path)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotCached
	}
	return a, nil
}

// ServeHTTP answers navigations with the cached entry page, everything else
// cache-first, then from the origin, then with the cached entry page.
// The query string is ignored for cache lookups.
func (w *Worker) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if isNavigation(r) {
		if a := w.lookup(ctx, w.manifest.EntryPage); a != nil {
			writeAsset(rw, a.ContentType, a.Body, "HIT")
			return
		}
	}

	if a := w.lookup(ctx, r.URL.Path); a != nil {
		writeAsset(rw, a.ContentType, a.Body, "HIT")
		return
	}

	res, err := w.origin.Fetch(ctx, r.URL.Path)
	if err == nil {
		writeAsset(rw, res.ContentType, res.Body, "MISS")
		return
	}
	w.logger.Debug("origin failed", "path", r.URL.Path, "error", err)

	if a := w.lookup(ctx, w.manifest.EntryPage); a != nil {
		writeAsset(rw, a.ContentType, a.Body, "FALLBACK")
		return
	}

	http.Error(rw, "offline and not cached", http.StatusGatewayTimeout)
}

// lookup is Match with cache failures logged and treated as misses.
func (w *Worker) lookup(ctx context.Context, path string) *storage.Asset {
	a, err := w.Match(ctx, path)
	switch {
	case err == nil:
		return a
	case errors.Is(err, ErrNotCached):
		return nil
	default:
		w.logger.Warn("cache lookup failed", "path", path, "error", err)
		return nil
	}
}

func isNavigation(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func writeAsset(rw http.ResponseWriter, contentType string, body []byte, status string) {
	if contentType != "" {
		rw.Header().Set("Content-Type", contentType)
	}
	rw.Header().Set("X-Cache", status)
	rw.WriteHeader(http.StatusOK)
	rw.Write(body) //nolint:errcheck // client went away
}
