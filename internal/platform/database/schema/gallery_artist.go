package schema

// GalleryArtistTable represents the 'artists' table
type GalleryArtistTable struct {
	Table    string
	ID       string
	Name     string
	Hometown string
	Birthday string
	Deathday string

	// NameKey is the unique constraint on Name.
	NameKey string
}

// GalleryArtist is the schema definition for artists
var GalleryArtist = GalleryArtistTable{
	Table:    "artists",
	ID:       "id",
	Name:     "name",
	Hometown: "hometown",
	Birthday: "birthday",
	Deathday: "deathday",
	NameKey:  "artists_name_key",
}

func (t GalleryArtistTable) Columns() []string {
	return []string{t.ID, t.Name, t.Hometown, t.Birthday, t.Deathday}
}
