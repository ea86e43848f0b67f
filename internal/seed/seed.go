// Package seed resets the gallery tables and loads the demo collection.
//
// Rows go through the domain services, so seeded data obeys the same
// validation and uniqueness rules as data created over HTTP.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/internal/platform/database/schema"
	"github.com/taibuivan/gallery/internal/platform/postgres"
)

// Services are the domain entry points the seed writes through.
type Services struct {
	Artists   *artist.Service
	Paintings *painting.Service
}

// Reset removes every painting and artist and restarts the id sequences.
func Reset(ctx context.Context, db postgres.Querier) error {
	query := fmt.Sprintf("TRUNCATE %s, %s RESTART IDENTITY CASCADE",
		schema.GalleryPainting.Table, schema.GalleryArtist.Table,
	)
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("seed: reset tables: %w", err)
	}
	return nil
}

// Run resets the store and loads [Artists] and [Paintings].
func Run(ctx context.Context, db postgres.Querier, services Services, logger *slog.Logger) error {
	if err := Reset(ctx, db); err != nil {
		return err
	}
	return Load(ctx, services, logger)
}

// Load inserts the fixtures without clearing anything first.
func Load(ctx context.Context, services Services, logger *slog.Logger) error {
	artists := Artists()
	for i := range artists {
		if err := services.Artists.FindOrCreate(ctx, &artists[i]); err != nil {
			return fmt.Errorf("seed: artist %q: %w", artists[i].Name, err)
		}
	}

	fixtures := Paintings()
	for i := range fixtures {
		fixture := &fixtures[i]
		if err := services.Paintings.Register(ctx, &fixture.Painting, &fixture.ArtistName); err != nil {
			return fmt.Errorf("seed: painting %q: %w", fixture.Painting.Title, err)
		}
	}

	logger.Info("seed_completed",
		slog.Int("artists", len(artists)),
		slog.Int("paintings", len(fixtures)),
	)
	return nil
}
