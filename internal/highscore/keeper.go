// Package highscore reconciles the best score with a persistent key-value
// store. The store is read once at startup; writes happen on a background
// goroutine so the game loop never waits on I/O, and failures are logged
// and absorbed.
package highscore

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultKey is the key the best score is stored under.
const DefaultKey = "oceanrun.best"

// writeTimeout bounds a single background write.
const writeTimeout = 5 * time.Second

// KV is a string key-value store. *storage.Store satisfies it.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Keeper holds the best score in memory and persists improvements.
// It is safe for concurrent use by several game sessions.
type Keeper struct {
	kv     KV
	key    string
	logger *log.Logger

	mu      sync.Mutex
	best    int
	written int
	loaded  bool
	closed  bool

	pending chan struct{}
	done    chan struct{}
}

// New creates a keeper over kv and starts its writer. kv may be nil, in
// which case the best score lives only in memory. logger may be nil.
func New(kv KV, key string, logger *log.Logger) *Keeper {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}

	k := &Keeper{
		kv:      kv,
		key:     key,
		logger:  logger,
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go k.run()
	return k
}

// Load reads the stored best score. Only the first call touches the store;
// an absent, unparsable or unreadable value counts as 0.
func (k *Keeper) Load(ctx context.Context) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.loaded {
		return k.best
	}
	k.loaded = true

	if k.kv == nil {
		return k.best
	}

	v, err := Read(ctx, k.kv, k.key)
	if err != nil {
		k.logger.Warn("could not read best score", "key", k.key, "error", err)
		return k.best
	}

	k.best = max(k.best, v)
	k.written = v
	return k.best
}

// Read returns the best score stored under key. An absent key reads as 0;
// a value that is not a non-negative integer is an error.
func Read(ctx context.Context, kv KV, key string) (int, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("highscore: malformed value %q for %s", raw, key)
	}
	return v, nil
}

// Best returns the best score known so far.
func (k *Keeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Reconcile records score if it strictly beats the best and schedules a
// write. It never blocks on the store. Reports whether the best changed.
func (k *Keeper) Reconcile(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score <= k.best {
		return false
	}
	k.best = score

	if k.kv != nil && !k.closed {
		select {
		case k.pending <- struct{}{}:
		default: // a write is already queued and will pick up the new value
		}
	}
	return true
}

// run writes the latest best score whenever one is pending.
func (k *Keeper) run() {
	defer close(k.done)
	for range k.pending {
		k.flush()
	}
}

// flush persists the current best if it is ahead of the stored value.
func (k *Keeper) flush() {
	k.mu.Lock()
	v, written := k.best, k.written
	k.mu.Unlock()

	if v <= written {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := k.kv.Set(ctx, k.key, strconv.Itoa(v)); err != nil {
		k.logger.Warn("could not persist best score", "key", k.key, "score", v, "error", err)
		return
	}

	k.mu.Lock()
	k.written = max(k.written, v)
	k.mu.Unlock()
	k.logger.Debug("best score saved", "score", v)
}

// Close stops the writer after pending writes finish.
func (k *Keeper) Close() {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		<-k.done
		return
	}
	k.closed = true
	close(k.pending)
	k.mu.Unlock()

	<-k.done
}
