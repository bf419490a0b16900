// Command rewind runs the Rewind nostalgia-browsing service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rewindhq/rewind/internal/auth"
	"github.com/rewindhq/rewind/internal/blob"
	"github.com/rewindhq/rewind/internal/capsule"
	"github.com/rewindhq/rewind/internal/catalog"
	"github.com/rewindhq/rewind/internal/config"
	"github.com/rewindhq/rewind/internal/docstore"
	"github.com/rewindhq/rewind/internal/favorites"
	"github.com/rewindhq/rewind/internal/gamification"
	"github.com/rewindhq/rewind/internal/logger"
	"github.com/rewindhq/rewind/internal/mirror"
	"github.com/rewindhq/rewind/internal/prefs"
	"github.com/rewindhq/rewind/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New("rewind")

	blobs, err := blob.OpenSQLite(cfg.BlobPath)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer blobs.Close()

	cat := catalog.NewSeededStore()

	serverCfg := web.ServerConfig{
		Addr:      cfg.Addr,
		Catalog:   cat,
		Favorites: favorites.New(blobs, cat, log),
		Progress:  gamification.NewEngine(blobs, log),
		Prefs:     prefs.New(blobs, log),
		Auth:      auth.New(cfg),
		Log:       log,
	}

	if cfg.CapsulesEnabled() {
		docs, err := docstore.NewPostgres(context.Background(), cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("connecting to document store: %w", err)
		}
		defer docs.Close()

		m := mirror.New(docs, log, mirror.WithQueueSize(cfg.MirrorQueueSize))
		defer m.Close()

		serverCfg.Capsules = capsule.NewService(docs)
		serverCfg.Mirror = m
	} else {
		log.Info().Msg("no document store configured, capsules disabled")
	}

	return web.NewServer(serverCfg).Run()
}
