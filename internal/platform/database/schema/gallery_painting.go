package schema

// GalleryPaintingTable represents the 'paintings' table
type GalleryPaintingTable struct {
	Table                 string
	ID                    string
	Image                 string
	Title                 string
	Date                  string
	DimensionsText        string
	Width                 string
	Height                string
	CollectingInstitution string
	Depth                 string
	Diameter              string
	Slug                  string
	Votes                 string
	ArtistID              string

	// SlugKey is the unique constraint on Slug.
	SlugKey string
	// ArtistFKey is the foreign key from ArtistID to artists.
	ArtistFKey string
}

// GalleryPainting is the schema definition for paintings.
//
// collecting_institution is the authoritative column name; an older schema
// snapshot spelled it collection_institution.
var GalleryPainting = GalleryPaintingTable{
	Table:                 "paintings",
	ID:                    "id",
	Image:                 "image",
	Title:                 "title",
	Date:                  "date",
	DimensionsText:        "dimensions_text",
	Width:                 "width",
	Height:                "height",
	CollectingInstitution: "collecting_institution",
	Depth:                 "depth",
	Diameter:              "diameter",
	Slug:                  "slug",
	Votes:                 "votes",
	ArtistID:              "artist_id",
	SlugKey:               "paintings_slug_key",
	ArtistFKey:            "paintings_artist_id_fkey",
}

func (t GalleryPaintingTable) Columns() []string {
	return []string{
		t.ID, t.Image, t.Title, t.Date, t.DimensionsText, t.Width, t.Height,
		t.CollectingInstitution, t.Depth, t.Diameter, t.Slug, t.Votes, t.ArtistID,
	}
}
