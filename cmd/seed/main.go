// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed wipes the gallery tables and loads the demo collection.
//
// It reads the same environment as the API server and applies pending
// migrations first, so it can run against an empty database.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/internal/platform/config"
	"github.com/taibuivan/gallery/internal/platform/constants"
	"github.com/taibuivan/gallery/internal/platform/migration"
	pgstore "github.com/taibuivan/gallery/internal/platform/postgres"
	"github.com/taibuivan/gallery/internal/seed"
)

const seedTimeout = time.Minute

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	return seed.Run(ctx, pool, seed.Services{
		Artists:   artist.NewService(artist.NewPostgresRepository(pool), log),
		Paintings: painting.NewService(painting.NewPostgresRepository(pool), log),
	}, log)
}
