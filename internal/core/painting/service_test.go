package painting_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/testutil"
	"github.com/taibuivan/gallery/pkg/pointer"
)

func newService() (*painting.Service, *testutil.MemoryStore) {
	store := testutil.NewMemoryStore()
	return painting.NewService(store, testutil.Logger()), store
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Equal(t, apperr.CodeValidation, ae.Code)
	require.NotEmpty(t, ae.Details)
	return ae.Details[0].Field
}

/*
TestValidate verifies that only title, image and slug format are checked.
*/
func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		painting painting.Painting
		field    string
	}{
		{"valid", painting.Painting{Title: "Dusk", Image: "dusk.jpg"}, ""},
		{"missing_title", painting.Painting{Image: "dusk.jpg"}, painting.FieldTitle},
		{"missing_image", painting.Painting{Title: "Dusk"}, painting.FieldImage},
		{"blank_title", painting.Painting{Title: "  ", Image: "dusk.jpg"}, painting.FieldTitle},
		{"negative_dimensions", painting.Painting{Title: "Dusk", Image: "dusk.jpg", Width: pointer.To(-1.0), Depth: pointer.To(-3.0)}, ""},
		{"bad_slug", painting.Painting{Title: "Dusk", Image: "dusk.jpg", Slug: pointer.To("Not A Slug")}, painting.FieldSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := painting.Validate(&tt.painting)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.field, fieldOf(t, err))
		})
	}
}

/*
TestService_CreatePainting_WithArtist verifies that paintings naming the same
artist share one artist row.
*/
func TestService_CreatePainting_WithArtist(t *testing.T) {
	service, store := newService()
	ctx := context.Background()

	input := painting.CreateInput{
		Image:      "https://example.com/dusk.jpg",
		Title:      "Dusk",
		ArtistName: pointer.To("Ada Lovelace"),
		Width:      pointer.To(40.0),
		Height:     pointer.To(30.5),
	}

	// 1. Create the same painting twice
	first, err := service.CreatePainting(ctx, input)
	require.NoError(t, err)
	second, err := service.CreatePainting(ctx, input)
	require.NoError(t, err)

	// 2. Two paintings, one artist
	assert.NotEqual(t, first.ID, second.ID)
	assert.Zero(t, first.Votes)
	require.NotNil(t, first.Artist)
	require.NotNil(t, second.Artist)
	assert.Equal(t, first.Artist.ID, second.Artist.ID)
	assert.Equal(t, "Ada Lovelace", first.Artist.Name)

	// 3. Client creates never receive a slug
	assert.Nil(t, first.Slug)
	assert.Nil(t, second.Slug)

	assert.Len(t, store.Paintings(), 2)
	assert.Len(t, store.Artists(), 1)
}

/*
TestService_CreatePainting_WithoutArtist verifies that a missing or blank
artist name leaves the painting unattributed.
*/
func TestService_CreatePainting_WithoutArtist(t *testing.T) {
	tests := []struct {
		name       string
		artistName *string
	}{
		{"absent", nil},
		{"empty", pointer.To("")},
		{"whitespace", pointer.To("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newService()

			created, err := service.CreatePainting(context.Background(), painting.CreateInput{
				Image:      "a.jpg",
				Title:      "Untitled",
				ArtistName: tt.artistName,
			})
			require.NoError(t, err)

			assert.Nil(t, created.Artist)
			assert.Nil(t, created.ArtistID)
			assert.Nil(t, created.Slug)
			assert.Len(t, store.Paintings(), 1)
			assert.Empty(t, store.Artists())
		})
	}
}

/*
TestService_CreatePainting_AcceptsOptionalValues verifies that values outside
title and image are stored as given.
*/
func TestService_CreatePainting_AcceptsOptionalValues(t *testing.T) {
	service, store := newService()
	longName := strings.Repeat("a", 201)

	created, err := service.CreatePainting(context.Background(), painting.CreateInput{
		Image:      "a.jpg",
		Title:      "Dusk",
		Width:      pointer.To(-1.0),
		Height:     pointer.To(-2.5),
		ArtistName: &longName,
	})
	require.NoError(t, err)

	assert.Equal(t, -1.0, pointer.Val(created.Width))
	assert.Equal(t, -2.5, pointer.Val(created.Height))
	require.NotNil(t, created.Artist)
	assert.Equal(t, longName, created.Artist.Name)
	assert.Len(t, store.Artists(), 1)
}

/*
TestService_CreatePainting_ValidationLeavesStoreUntouched verifies that a
rejected create writes neither a painting nor an artist.
*/
func TestService_CreatePainting_ValidationLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name  string
		input painting.CreateInput
		field string
	}{
		{"missing_title", painting.CreateInput{Image: "a.jpg", ArtistName: pointer.To("Ada Lovelace")}, painting.FieldTitle},
		{"missing_image", painting.CreateInput{Title: "Dusk", ArtistName: pointer.To("Ada Lovelace")}, painting.FieldImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newService()

			_, err := service.CreatePainting(context.Background(), tt.input)

			assert.Equal(t, tt.field, fieldOf(t, err))
			assert.Empty(t, store.Paintings())
			assert.Empty(t, store.Artists())
		})
	}
}

/*
TestService_Register_ExplicitSlug verifies that trusted loads keep their
votes and that a reused slug is rejected.
*/
func TestService_Register_ExplicitSlug(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	// 1. First registration keeps slug and votes
	first := &painting.Painting{Image: "a.jpg", Title: "Irises", Slug: pointer.To("irises"), Votes: 64}
	require.NoError(t, service.Register(ctx, first, pointer.To("Vincent van Gogh")))
	assert.Equal(t, 64, first.Votes)
	assert.Equal(t, "irises", pointer.Val(first.Slug))

	// 2. Same slug again fails on the slug field
	duplicate := &painting.Painting{Image: "b.jpg", Title: "Irises again", Slug: pointer.To("irises")}
	err := service.Register(ctx, duplicate, nil)

	assert.Equal(t, painting.FieldSlug, fieldOf(t, err))
}

/*
TestService_Upvote verifies that an upvote adds one vote and embeds the artist.
*/
func TestService_Upvote(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created := &painting.Painting{Image: "a.jpg", Title: "The Starry Night", Votes: 64}
	require.NoError(t, service.Register(ctx, created, pointer.To("Vincent van Gogh")))

	upvoted, err := service.Upvote(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 65, upvoted.Votes)
	require.NotNil(t, upvoted.Artist)
	assert.Equal(t, "Vincent van Gogh", upvoted.Artist.Name)
}

/*
TestService_Upvote_Concurrent verifies that concurrent upvotes are all counted.
*/
func TestService_Upvote_Concurrent(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.CreatePainting(ctx, painting.CreateInput{Image: "a.jpg", Title: "Water Lilies"})
	require.NoError(t, err)

	// 1. Fire the upvotes in parallel
	const upvotes = 50
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

	// 2. No vote was lost
	found, err := service.GetPainting(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, upvotes, found.Votes)
}

/*
TestService_Upvote_Unknown verifies that upvoting a missing id changes nothing.
*/
func TestService_Upvote_Unknown(t *testing.T) {
	service, store := newService()
	ctx := context.Background()

	created, err := service.CreatePainting(ctx, painting.CreateInput{Image: "a.jpg", Title: "Dusk"})
	require.NoError(t, err)

	_, err = service.Upvote(ctx, created.ID+100)

	assert.ErrorIs(t, err, painting.ErrNotFound)
	assert.Zero(t, store.Paintings()[0].Votes)
}

/*
TestService_ListPaintings verifies the empty listing and store failures.
*/
func TestService_ListPaintings(t *testing.T) {
	service, store := newService()
	ctx := context.Background()

	// 1. Empty store lists nothing
	paintings, err := service.ListPaintings(ctx)
	require.NoError(t, err)
	assert.Empty(t, paintings)

	// 2. Store errors are returned
	store.Err = errors.New("connection refused")
	_, err = service.ListPaintings(ctx)
	assert.Error(t, err)
}
