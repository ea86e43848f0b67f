package painting

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gallery/internal/platform/validate"
	"github.com/taibuivan/gallery/pkg/pointer"
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

func (service *Service) ListPaintings(ctx context.Context) ([]*Painting, error) {
	return service.repo.ListPaintings(ctx)
}

func (service *Service) GetPainting(ctx context.Context, id int64) (*Painting, error) {
	return service.repo.GetPainting(ctx, id)
}

// Upvote adds exactly one vote to the painting. Unknown ids fail with NotFound.
func (service *Service) Upvote(ctx context.Context, id int64) (*Painting, error) {
	painting, err := service.repo.IncrementVotes(ctx, id)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("painting_upvoted", slog.Int64("painting_id", id), slog.Int("votes", painting.Votes))
	return painting, nil
}

// CreatePainting creates a painting from client input. Only the allow-listed
// attributes exist on [CreateInput]; votes start at zero and the slug stays
// empty.
func (service *Service) CreatePainting(ctx context.Context, input CreateInput) (*Painting, error) {
	painting := input.toPainting()
	if err := service.create(ctx, painting, input.ArtistName); err != nil {
		return nil, err
	}
	return painting, nil
}

// Register creates a painting with every attribute supplied by the caller,
// including slug and votes. It is meant for trusted bulk loads such as the seed.
func (service *Service) Register(ctx context.Context, painting *Painting, artistName *string) error {
	return service.create(ctx, painting, artistName)
}

func (service *Service) create(ctx context.Context, painting *Painting, artistName *string) error {
	painting.normalize()
	artistName = presentName(artistName)

	if err := Validate(painting); err != nil {
		return err
	}

	if painting.Slug != nil {
		taken, err := service.repo.SlugExists(ctx, *painting.Slug)
		if err != nil {
			return err
		}
		if taken {
			return validate.FieldError(FieldSlug, validate.MsgTaken)
		}
	}

	if err := service.repo.CreatePainting(ctx, painting, artistName); err != nil {
		return err
	}

	service.logger.Info("painting_created",
		slog.Int64("painting_id", painting.ID),
		slog.String("title", painting.Title),
		slog.String("slug", pointer.Val(painting.Slug)),
	)
	return nil
}
