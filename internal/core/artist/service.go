package artist

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListArtists(ctx context.Context) ([]*Artist, error) {
	return service.repo.ListArtists(ctx)
}

func (service *Service) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	return service.repo.GetArtist(ctx, id)
}

// FindOrCreate resolves artist by exact name, creating it with its remaining
// attributes when absent. Existing artists are returned unchanged.
func (service *Service) FindOrCreate(ctx context.Context, artist *Artist) error {
	if err := Validate(artist); err != nil {
		return err
	}

	created, err := service.repo.FindOrCreate(ctx, artist)
	if err != nil {
		return err
	}

	if created {
		service.logger.Info("artist_created", slog.Int64("artist_id", artist.ID), slog.String("name", artist.Name))
	}
	return nil
}
