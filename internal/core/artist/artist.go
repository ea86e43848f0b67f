package artist

import "github.com/taibuivan/gallery/internal/platform/validate"

// Artist is the painter a gallery painting belongs to.
//
// Name is the natural key: find-or-create resolves artists by exact name.
type Artist struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Hometown *string `json:"hometown"`
	Birthday *string `json:"birthday"`
	Deathday *string `json:"deathday"`
}

const FieldName = "name"

// Validate checks that the artist has a name. It performs no I/O.
func Validate(artist *Artist) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name)
	return validator.Err()
}
