package seed

import (
	"github.com/taibuivan/gallery/internal/core/artist"
	"github.com/taibuivan/gallery/internal/core/painting"
	"github.com/taibuivan/gallery/pkg/pointer"
)

// PaintingFixture is a seeded painting together with the name of its artist.
type PaintingFixture struct {
	Painting   painting.Painting
	ArtistName string
}

// Artists returns the seeded artists in insertion order.
func Artists() []artist.Artist {
	return []artist.Artist{
		newArtist("Petrus Christus", "Baarle-Hertog, Belgium", "1410", "1475"),
		newArtist("Johannes Vermeer", "Delft, Netherlands", "1632", "1675"),
		newArtist("Rembrandt van Rijn", "Leiden, Netherlands", "1606", "1669"),
		newArtist("Peter Paul Rubens", "Siegen, Westphalia", "1577", "1640"),
		newArtist("Bartholomaeus Spranger", "Antwerp, Belgium", "1546", "1611"),
		newArtist("Frans Hals", "Antwerp, Belgium", "1582", "1666"),
	}
}

// Paintings returns the seeded paintings in insertion order.
func Paintings() []PaintingFixture {
	return []PaintingFixture{
		{
			ArtistName: "Petrus Christus",
			Painting: newPainting("Portrait of a Carthusian", "1446", "11 1/2 × 8 1/2 in", 8.5, 11.5,
				"petrus-christus-portrait-of-a-carthusian",
				"https://d32dm0rphc51dk.cloudfront.net/pVc7CubFzVlPhbErTAqyYg/medium.jpg", 64),
		},
		{
			ArtistName: "Johannes Vermeer",
			Painting: newPainting("Study of a Young Woman", "ca. 1665–1667", "17 1/2 × 15 3/4 in", 15.75, 17.5,
				"johannes-vermeer-study-of-a-young-woman",
				"https://d32dm0rphc51dk.cloudfront.net/pLcp7hFbgtfYnmq-b_LXvg/medium.jpg", 21),
		},
		{
			ArtistName: "Rembrandt van Rijn",
			Painting: newPainting("Portrait of Gerard de Lairesse", "1665–1667", "44 3/8 × 34 1/2 in", 34.5, 44.375,
				"rembrandt-van-rijn-portrait-of-gerard-de-lairesse",
				"https://d32dm0rphc51dk.cloudfront.net/6b4QduWxeA1kSnrifgm2Zw/medium.jpg", 30),
		},
		{
			ArtistName: "Peter Paul Rubens",
			Painting: newPainting("Bust of Pseudo-Seneca", "1600–1626", "10 7/16 × 6 15/16 in", 6.9375, 10.4375,
				"peter-paul-rubens-bust-of-pseudo-seneca",
				"https://d32dm0rphc51dk.cloudfront.net/RcoWk2PHQq6yqX7dpSyt-g/medium.jpg", 96),
		},
		{
			ArtistName: "Petrus Christus",
			Painting: newPainting("A Goldsmith in his Shop", "1449", "39 3/8 × 33 3/4 in", 33.75, 39.375,
				"petrus-christus-a-goldsmith-in-his-shop",
				"https://d32dm0rphc51dk.cloudfront.net/0-QXL43Ox2QgwqkYoCjAjg/medium.jpg", 80),
		},
		{
			ArtistName: "Peter Paul Rubens",
			Painting: newPainting("Rubens, His Wife Helena Fourment (1614–1673), and Their Son Frans (1633–1678)",
				"ca. 1635", "80 1/4 × 62 1/4 in", 62.25, 80.25,
				"peter-paul-rubens-rubens-his-wife-helena-fourment-1614-1673-and-their-son-frans-1633-1678",
				"https://d32dm0rphc51dk.cloudfront.net/miBYVNx3iV4AtBWgierQrg/medium.jpg", 47),
		},
		{
			ArtistName: "Rembrandt van Rijn",
			Painting: newPainting("Aristotle with a Bust of Homer", "1653", "56 1/2 × 53 3/4 in", 53.75, 56.5,
				"rembrandt-van-rijn-aristotle-with-a-bust-of-homer",
				"https://d32dm0rphc51dk.cloudfront.net/q5OTabe7_Bu8kfxzK_UUag/medium.jpg", 46),
		},
		{
			ArtistName: "Johannes Vermeer",
			Painting: newPainting("Young Woman with a Water Pitcher", "ca. 1662", "18 × 16 in", 16, 18,
				"johannes-vermeer-young-woman-with-a-water-pitcher",
				"https://d32dm0rphc51dk.cloudfront.net/pdRjIGw58ecojporcDG0_w/medium.jpg", 95),
		},
		{
			ArtistName: "Rembrandt van Rijn",
			Painting: newPainting("Self-Portrait", "1660", "31 5/8 × 26 1/2 in", 26.5, 31.625,
				"rembrandt-van-rijn-self-portrait-1661",
				"https://d32dm0rphc51dk.cloudfront.net/7EthRD-B57oEJovV77WH0Q/medium.jpg", 41),
		},
		{
			ArtistName: "Peter Paul Rubens",
			Painting: newPainting("Portrait of Nicolas Trigault in Chinese Costume", "1617", "17 9/16 × 9 3/4 in", 9.75, 17.5625,
				"peter-paul-rubens-portrait-of-nicolas-trigault-in-chinese-costume",
				"https://d32dm0rphc51dk.cloudfront.net/-VmrYlEp4nXEjtSa8-C7PA/medium.jpg", 37),
		},
		{
			ArtistName: "Bartholomaeus Spranger",
			Painting: newPainting("Diana and Actaeon", "ca. 1580–1585", "16 1/4 × 12 5/8 in", 12.625, 16.25,
				"bartholomaeus-spranger-diana-and-actaeon",
				"https://d32dm0rphc51dk.cloudfront.net/FaqwCA1k4QjgaiGN8PElUQ/medium.jpg", 30),
		},
		{
			ArtistName: "Frans Hals",
			Painting: newPainting("Willem Coymans", "1645", "30 5/16 × 25 3/16 in", 25.1875, 30.3125,
				"frans-hals-willem-coymans",
				"https://d32dm0rphc51dk.cloudfront.net/gXMChrE5re4HdlIP6__LXQ/medium.jpg", 25),
		},
	}
}

func newArtist(name, hometown, birthday, deathday string) artist.Artist {
	return artist.Artist{
		Name:     name,
		Hometown: pointer.To(hometown),
		Birthday: pointer.To(birthday),
		Deathday: pointer.To(deathday),
	}
}

func newPainting(title, date, dimensions string, width, height float64, slug, image string, votes int) painting.Painting {
	return painting.Painting{
		Title:          title,
		Date:           pointer.To(date),
		DimensionsText: pointer.To(dimensions),
		Width:          pointer.To(width),
		Height:         pointer.To(height),
		Slug:           pointer.To(slug),
		Image:          image,
		Votes:          votes,
	}
}
