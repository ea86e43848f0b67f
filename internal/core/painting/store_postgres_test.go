package painting_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/internal/testutil"
	"github.com/taibuivan/gallery/pkg/pointer"
)

func newPostgresService(t *testing.T) (*painting.Service, *painting.PostgresRepository) {
	t.Helper()

	repository := painting.NewPostgresRepository(testutil.SetupTestDB(t))
	return painting.NewService(repository, testutil.Logger()), repository
}

/*
TestPostgres_CreatePainting_SharesArtist verifies artist reuse against a real database.
*/
func TestPostgres_CreatePainting_SharesArtist(t *testing.T) {
	service, repository := newPostgresService(t)
	ctx := context.Background()
	input := painting.CreateInput{Image: "dusk.jpg", Title: "Dusk", ArtistName: pointer.To("Ada Lovelace")}

	// 1. Two creates with one artist name
	first, err := service.CreatePainting(ctx, input)
	require.NoError(t, err)
	second, err := service.CreatePainting(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, pointer.Val(first.ArtistID), pointer.Val(second.ArtistID))
	assert.Nil(t, second.Slug)

	// 2. The joined listing embeds the artist
	all, err := repository.ListPaintings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Artist)
	assert.Equal(t, "Ada Lovelace", all[0].Artist.Name)
	assert.Zero(t, all[0].Votes)
}

/*
TestPostgres_CreatePainting_Concurrent verifies that racing creates resolve to a single artist row.
*/
func TestPostgres_CreatePainting_Concurrent(t *testing.T) {
	service, repository := newPostgresService(t)
	ctx := context.Background()

	const workers = 6
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreatePainting(ctx, painting.CreateInput{
				Image:      "wave.jpg",
				Title:      "The Great Wave",
				ArtistName: pointer.To("Hokusai"),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repository.ListPaintings(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
	for _, p := range all {
		assert.Equal(t, pointer.Val(all[0].ArtistID), pointer.Val(p.ArtistID))
	}
}

/*
TestPostgres_Upvote_Concurrent verifies that the atomic increment loses no votes.
*/
func TestPostgres_Upvote_Concurrent(t *testing.T) {
	service, _ := newPostgresService(t)
	ctx := context.Background()

	created := &painting.Painting{Image: "starry.jpg", Title: "The Starry Night", Votes: 64}
	require.NoError(t, service.Register(ctx, created, pointer.To("Vincent van Gogh")))

	const upvotes = 25
	var wg sync.WaitGroup
	for range upvotes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Upvote(ctx, created.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := service.GetPainting(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 64+upvotes, found.Votes)
	require.NotNil(t, found.Artist)
	assert.Equal(t, "Vincent van Gogh", found.Artist.Name)
}

/*
TestPostgres_Upvote_Unknown verifies that upvoting a missing row is NotFound.
*/
func TestPostgres_Upvote_Unknown(t *testing.T) {
	service, _ := newPostgresService(t)

	_, err := service.Upvote(context.Background(), 999)

	assert.ErrorIs(t, err, painting.ErrNotFound)
}

/*
TestPostgres_Register_DuplicateSlug verifies the slug unique constraint mapping.
*/
func TestPostgres_Register_DuplicateSlug(t *testing.T) {
	service, repository := newPostgresService(t)
	ctx := context.Background()

	// 1. Claim the slug
	require.NoError(t, service.Register(ctx, &painting.Painting{Image: "a.jpg", Title: "Irises", Slug: pointer.To("irises")}, nil))

	// 2. The unique constraint maps to a slug field error
	duplicate := &painting.Painting{Image: "b.jpg", Title: "Irises", Slug: pointer.To("irises")}
	err := repository.CreatePainting(ctx, duplicate, nil)

	assert.Equal(t, painting.FieldSlug, fieldOf(t, err))
}

/*
TestPostgres_Register_UnknownArtistID verifies that a dangling artist id fails on artist_id.
*/
func TestPostgres_Register_UnknownArtistID(t *testing.T) {
	_, repository := newPostgresService(t)

	err := repository.CreatePainting(context.Background(),
		&painting.Painting{Image: "a.jpg", Title: "Orphan", ArtistID: pointer.To(int64(404))}, nil)

	assert.Equal(t, painting.FieldArtistID, fieldOf(t, err))
}
