package artist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/platform/database/schema"
	"github.com/taibuivan/gallery/internal/platform/dberr"
	"github.com/taibuivan/gallery/internal/platform/postgres"
	"github.com/taibuivan/gallery/pkg/slice"
)

// maxResolveAttempts bounds the lookup retries of FindOrCreate when a
// concurrent insert of the same name wins the race.
const maxResolveAttempts = 3

// ErrNotFound is returned when no artist matches.
var ErrNotFound = apperr.NotFound("Artist")

type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository binds the repository to a pool or to a running transaction.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SelectColumns is the artist column list, qualified with alias when alias is non-empty.
func SelectColumns(alias string) string {
	columns := schema.GalleryArtist.Columns()
	if alias != "" {
		columns = slice.Map(columns, func(column string) string { return alias + "." + column })
	}
	return strings.Join(columns, ", ")
}

func scanArtist(row pgx.Row) (*Artist, error) {
	a := &Artist{}
	if err := row.Scan(&a.ID, &a.Name, &a.Hometown, &a.Birthday, &a.Deathday); err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) ListArtists(ctx context.Context) ([]*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		SelectColumns(""), schema.GalleryArtist.Table, schema.GalleryArtist.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	artists := make([]*Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	return artists, nil
}

func (repository *PostgresRepository) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		SelectColumns(""), schema.GalleryArtist.Table, schema.GalleryArtist.ID,
	)

	a, err := scanArtist(repository.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, dberr.Wrap(err, "get_artist")
}

func (repository *PostgresRepository) FindByName(ctx context.Context, name string) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		SelectColumns(""), schema.GalleryArtist.Table, schema.GalleryArtist.Name,
	)

	a, err := scanArtist(repository.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, dberr.Wrap(err, "find_artist_by_name")
}

// FindOrCreate relies on the unique constraint on artists.name: an insert
// that loses a race returns no row, and the lookup is retried.
func (repository *PostgresRepository) FindOrCreate(ctx context.Context, a *Artist) (bool, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO NOTHING
		RETURNING %s
	`,
		schema.GalleryArtist.Table, schema.GalleryArtist.Name, schema.GalleryArtist.Hometown,
		schema.GalleryArtist.Birthday, schema.GalleryArtist.Deathday,
		schema.GalleryArtist.Name, schema.GalleryArtist.ID,
	)

	for attempt := 0; attempt < maxResolveAttempts; attempt++ {
		existing, err := repository.FindByName(ctx, a.Name)
		if err == nil {
			*a = *existing
			return false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return false, err
		}

		err = repository.db.QueryRow(ctx, insert, a.Name, a.Hometown, a.Birthday, a.Deathday).Scan(&a.ID)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return false, dberr.Wrap(err, "create_artist")
		}
	}

	return false, apperr.Internal(fmt.Errorf("artist: could not resolve %q after %d attempts", a.Name, maxResolveAttempts))
}
