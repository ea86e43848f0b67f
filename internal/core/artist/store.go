package artist

import "context"

// Repository is the artist storage contract.
type Repository interface {
	ListArtists(ctx context.Context) ([]*Artist, error)
	GetArtist(ctx context.Context, id int64) (*Artist, error)
	FindByName(ctx context.Context, name string) (*Artist, error)

	// FindOrCreate loads the artist named a.Name into a, inserting a when no
	// such artist exists. It reports whether a row was inserted.
	FindOrCreate(ctx context.Context, a *Artist) (bool, error)
}
