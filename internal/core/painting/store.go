package painting

import "context"

// Repository is the painting storage contract. Every read embeds the artist.
type Repository interface {
	ListPaintings(ctx context.Context) ([]*Painting, error)
	GetPainting(ctx context.Context, id int64) (*Painting, error)

	// IncrementVotes adds one vote atomically and returns the updated painting.
	IncrementVotes(ctx context.Context, id int64) (*Painting, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	// CreatePainting inserts p. When artistName is non-nil the artist is
	// found or created by that name in the same transaction; otherwise
	// p.ArtistID, if set, must reference an existing artist.
	CreatePainting(ctx context.Context, p *Painting, artistName *string) error
}
