package painting

import (
	"strings"

	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/platform/validate"
)

// Painting is a gallery entry that visitors upvote.
//
// Votes is only ever changed by the upvote operation. Artist is populated
// on every read so clients receive the painter embedded.
type Painting struct {
	ID                    int64          `json:"id"`
	Image                 string         `json:"image"`
	Title                 string         `json:"title"`
	Date                  *string        `json:"date"`
	DimensionsText        *string        `json:"dimensions_text"`
	Width                 *float64       `json:"width"`
	Height                *float64       `json:"height"`
	CollectingInstitution *string        `json:"collecting_institution"`
	Depth                 *float64       `json:"depth"`
	Diameter              *float64       `json:"diameter"`
	Slug                  *string        `json:"slug"`
	Votes                 int            `json:"votes"`
	ArtistID              *int64         `json:"artist_id"`
	Artist                *artist.Artist `json:"artist"`
}

// CreateInput is the allow-list of attributes a client may submit when
// creating a painting. Anything else in the request is dropped.
type CreateInput struct {
	Image  string
	Title  string
	Date   *string
	Width  *float64
	Height *float64

	// ArtistName is nil when the client did not send the field at all.
	// A blank name is treated the same as a missing one.
	ArtistName *string
}

const (
	FieldImage      = "image"
	FieldTitle      = "title"
	FieldArtistName = "artist_name"
	FieldArtistID   = "artist_id"
	FieldDate       = "date"
	FieldWidth      = "width"
	FieldHeight     = "height"
	FieldSlug       = "slug"
)

// Validate checks that title and image are present and that a set slug is
// well formed. Every other attribute is accepted as given. It performs no
// I/O; slug uniqueness is checked by the [Service].
func Validate(painting *Painting) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, painting.Title).
		Required(FieldImage, painting.Image)

	if painting.Slug != nil {
		validator.Slug(FieldSlug, *painting.Slug)
	}

	return validator.Err()
}

// toPainting builds a fresh painting from the allow-listed input.
func (input CreateInput) toPainting() *Painting {
	return &Painting{
		Image:  input.Image,
		Title:  input.Title,
		Date:   input.Date,
		Width:  input.Width,
		Height: input.Height,
	}
}

// presentName returns nil for a missing or blank artist name.
func presentName(name *string) *string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil
	}
	return name
}

// normalize turns blank optional text into nil so the store keeps NULLs.
func (painting *Painting) normalize() {
	for _, field := range []**string{&painting.Date, &painting.DimensionsText, &painting.CollectingInstitution, &painting.Slug} {
		if *field != nil && strings.TrimSpace(**field) == "" {
			*field = nil
		}
	}
}
