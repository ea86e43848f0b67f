package painting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/platform/database/schema"
	"github.com/taibuivan/gallery/internal/platform/dberr"
	"github.com/taibuivan/gallery/internal/platform/postgres"
	"github.com/taibuivan/gallery/internal/platform/validate"
	"github.com/taibuivan/gallery/pkg/slice"
)

// ErrNotFound is returned when no painting matches.
var ErrNotFound = apperr.NotFound("Painting")

type PostgresRepository struct {
	db postgres.TxBeginner
}

func NewPostgresRepository(db postgres.TxBeginner) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns lists the painting columns qualified with alias.
func selectColumns(alias string) string {
	qualified := slice.Map(schema.GalleryPainting.Columns(), func(column string) string { return alias + "." + column })
	return strings.Join(qualified, ", ")
}

// joinedSelect reads paintings from source (a table or CTE aliased p) with
// the owning artist aliased a.
func joinedSelect(source string) string {
	return fmt.Sprintf(`
		SELECT %s, %s
		FROM %s p
		LEFT JOIN %s a ON a.%s = p.%s
	`,
		selectColumns("p"), artist.SelectColumns("a"),
		source,
		schema.GalleryArtist.Table, schema.GalleryArtist.ID, schema.GalleryPainting.ArtistID,
	)
}

// scanPainting reads one joined row. Artist columns are NULL for paintings without an artist.
func scanPainting(row pgx.Row) (*Painting, error) {
	p := &Painting{}
	var (
		artistID   *int64
		artistName *string
		a          artist.Artist
	)

	err := row.Scan(
		&p.ID, &p.Image, &p.Title, &p.Date, &p.DimensionsText, &p.Width, &p.Height,
		&p.CollectingInstitution, &p.Depth, &p.Diameter, &p.Slug, &p.Votes, &p.ArtistID,
		&artistID, &artistName, &a.Hometown, &a.Birthday, &a.Deathday,
	)
	if err != nil {
		return nil, err
	}

	if artistID != nil {
		a.ID = *artistID
		if artistName != nil {
			a.Name = *artistName
		}
		p.Artist = &a
	}
	return p, nil
}

func (repository *PostgresRepository) ListPaintings(ctx context.Context) ([]*Painting, error) {
	query := joinedSelect(schema.GalleryPainting.Table) + fmt.Sprintf(` ORDER BY p.%s ASC`, schema.GalleryPainting.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_paintings")
	}
	defer rows.Close()

	paintings := make([]*Painting, 0)
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_painting")
		}
		paintings = append(paintings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_paintings")
	}
	return paintings, nil
}

func (repository *PostgresRepository) GetPainting(ctx context.Context, id int64) (*Painting, error) {
	query := joinedSelect(schema.GalleryPainting.Table) + fmt.Sprintf(` WHERE p.%s = $1`, schema.GalleryPainting.ID)

	p, err := scanPainting(repository.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, dberr.Wrap(err, "get_painting")
}

// IncrementVotes performs the read-modify-write inside a single UPDATE so
// concurrent upvotes never lose an increment.
func (repository *PostgresRepository) IncrementVotes(ctx context.Context, id int64) (*Painting, error) {
	query := fmt.Sprintf(`
		WITH upvoted AS (
			UPDATE %s
			SET %s = COALESCE(%s, 0) + 1
			WHERE %s = $1
			RETURNING *
		)`,
		schema.GalleryPainting.Table,
		schema.GalleryPainting.Votes, schema.GalleryPainting.Votes,
		schema.GalleryPainting.ID,
	) + joinedSelect("upvoted")

	p, err := scanPainting(repository.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, dberr.Wrap(err, "increment_votes")
}

func (repository *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.GalleryPainting.Table, schema.GalleryPainting.Slug,
	)

	var exists bool
	err := repository.db.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, dberr.Wrap(err, "painting_slug_exists")
}

func (repository *PostgresRepository) CreatePainting(ctx context.Context, p *Painting, artistName *string) error {
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`,
		schema.GalleryPainting.Table,
		schema.GalleryPainting.Image, schema.GalleryPainting.Title, schema.GalleryPainting.Date,
		schema.GalleryPainting.DimensionsText, schema.GalleryPainting.Width, schema.GalleryPainting.Height,
		schema.GalleryPainting.CollectingInstitution, schema.GalleryPainting.Depth, schema.GalleryPainting.Diameter,
		schema.GalleryPainting.Slug, schema.GalleryPainting.Votes, schema.GalleryPainting.ArtistID,
		schema.GalleryPainting.ID,
	)

	err := postgres.InTx(ctx, repository.db, func(tx pgx.Tx) error {
		artists := artist.NewPostgresRepository(tx)

		// 1. Resolve the owning artist
		switch {
		case artistName != nil:
			owner := &artist.Artist{Name: *artistName}
			if _, err := artists.FindOrCreate(ctx, owner); err != nil {
				return err
			}
			p.ArtistID = &owner.ID
			p.Artist = owner
		case p.ArtistID != nil:
			owner, err := artists.GetArtist(ctx, *p.ArtistID)
			if errors.Is(err, artist.ErrNotFound) {
				return validate.FieldError(FieldArtistID, "must reference an existing artist")
			}
			if err != nil {
				return err
			}
			p.Artist = owner
		}

		// 2. Insert the painting
		return tx.QueryRow(ctx, insert,
			p.Image, p.Title, p.Date, p.DimensionsText, p.Width, p.Height,
			p.CollectingInstitution, p.Depth, p.Diameter, p.Slug, p.Votes, p.ArtistID,
		).Scan(&p.ID)
	})

	err = dberr.Wrap(err, "create_painting")
	switch {
	case dberr.IsConstraint(err, schema.GalleryPainting.SlugKey):
		return validate.FieldError(FieldSlug, validate.MsgTaken)
	case dberr.IsConstraint(err, schema.GalleryPainting.ArtistFKey):
		return validate.FieldError(FieldArtistID, "must reference an existing artist")
	}
	return err
}
