package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ocean-run/internal/highscore"
	"github.com/vovakirdan/ocean-run/internal/offline"
	"github.com/vovakirdan/ocean-run/internal/storage"
)

var (
	flagWebAddr   string
	flagWebOrigin string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the offline web bundle",
	Long: `Serve the Ocean Run landing page and its assets.

On start the asset manifest is installed into a versioned cache in the
database and older cache versions are purged. Requests are then answered
from the cache first, so the page keeps working when the origin is gone.

By default the origin is the bundle built into the binary; --origin
fetches the assets from a remote server instead.

Examples:
  oceanrun web
  oceanrun web --addr :9000
  oceanrun web --origin https://example.com/oceanrun`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address")
	webCmd.Flags().StringVar(&flagWebOrigin, "origin", "", "Remote base URL for assets (default: built-in bundle)")
}

func runWeb(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := stderrLogger("oceanrun-web")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	manifest := offline.DefaultManifest()
	var origin offline.Origin = offline.FSOrigin{FS: offline.Bundle(), Index: manifest.EntryPage}
	if flagWebOrigin != "" {
		origin = offline.HTTPOrigin{BaseURL: flagWebOrigin}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := offline.NewWorker(manifest, store, origin, logger)
	if err := worker.Install(ctx); err != nil {
		// Serve whatever an earlier install left behind
		logger.Warn("install failed", "error", err)
	} else if err := worker.Activate(ctx); err != nil {
		logger.Warn("activate failed", "error", err)
	}

	key := tuning.Storage.BestScoreKey
	best := func() int {
		v, err := highscore.Read(context.Background(), store, key)
		if err != nil {
			logger.Warn("could not read best score", "error", err)
		}
		return v
	}

	srv := &http.Server{
		Addr:              flagWebAddr,
		Handler:           offline.NewServer(worker, best, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck // exiting anyway
	}()

	logger.Info("serving", "address", flagWebAddr, "cache", manifest.Version)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
