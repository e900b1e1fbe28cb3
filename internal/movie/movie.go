// Package movie holds the movie detail record and the pure derivations the
// detail screen renders from it.
package movie

import (
	"math"
	"strings"
	"time"
)

type Detail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	// Genres is nil when the record carries no genre list at all.
	Genres      []Genre `json:"genres"`
	ReleaseDate string  `json:"release_date"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Image is the resolved backdrop source: either a remote URL or the bundled
// placeholder.
type Image struct {
	URL         string
	Placeholder bool
}

// PlaceholderAsset names the bundled fallback image.
const PlaceholderAsset = "placeholder.png"

func (i Image) String() string {
	if i.Placeholder {
		return PlaceholderAsset
	}
	return i.URL
}

// ImageSource picks the backdrop for d. A missing poster path always selects
// the placeholder. Otherwise the backdrop path is used, falling back to the
// poster path when the record has no backdrop.
func ImageSource(d Detail, baseURL string) Image {
	if d.PosterPath == "" {
		return Image{Placeholder: true}
	}
	path := d.BackdropPath
	if path == "" {
		path = d.PosterPath
	}
	return Image{URL: strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")}
}

// StarRating is a score on a 0..Max star scale. Value is not clamped.
type StarRating struct {
	Value float64
	Max   int
}

// Rating maps the 0-10 vote average onto maxStars stars as VoteAverage / 2.
func Rating(d Detail, maxStars int) StarRating {
	return StarRating{Value: d.VoteAverage / 2, Max: maxStars}
}

// Counts returns how many full, half and empty stars to draw. Out-of-range
// values are clamped for drawing only.
func (r StarRating) Counts() (full, half, empty int) {
	if r.Max <= 0 {
		return 0, 0, 0
	}
	v := r.Value
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > float64(r.Max) {
		v = float64(r.Max)
	}
	full = int(math.Floor(v))
	if v-float64(full) >= 0.5 {
		half = 1
	}
	empty = r.Max - full - half
	return full, half, empty
}

// GenreChips returns the upper-cased genre labels. ok is false when the record
// has no genre list, so the row should be omitted entirely.
func GenreChips(d Detail) (chips []string, ok bool) {
	if d.Genres == nil {
		return nil, false
	}
	chips = make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		chips = append(chips, strings.ToUpper(g.Name))
	}
	return chips, true
}

const (
	ReleaseDateLayout  = "January 02, 2006"
	UnknownReleaseDate = "Unknown"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// FormatReleaseDate renders raw as "Month DD, YYYY", or UnknownReleaseDate
// when it is empty or unparseable.
func FormatReleaseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownReleaseDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(ReleaseDateLayout)
		}
	}
	return UnknownReleaseDate
}
