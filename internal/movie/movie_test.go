package movie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://image.tmdb.org/t/p/original"

func TestImageSource(t *testing.T) {
	tests := []struct {
		name string
		d    Detail
		want Image
	}{
		{"no poster uses placeholder", Detail{BackdropPath: "/b.jpg"}, Image{Placeholder: true}},
		{"nothing at all", Detail{}, Image{Placeholder: true}},
		{"poster gates backdrop", Detail{PosterPath: "/p.jpg", BackdropPath: "/b.jpg"}, Image{URL: base + "/b.jpg"}},
		{"poster only", Detail{PosterPath: "/x.jpg"}, Image{URL: base + "/x.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageSource(tt.d, base))
		})
	}

	assert.Equal(t, PlaceholderAsset, Image{Placeholder: true}.String())
	assert.Equal(t, base+"/b.jpg", ImageSource(Detail{PosterPath: "/p.jpg", BackdropPath: "b.jpg"}, base+"/").String())
}

func TestRating(t *testing.T) {
	r := Rating(Detail{VoteAverage: 8.0}, 5)
	assert.Equal(t, 4.0, r.Value)
	assert.Equal(t, 5, r.Max)

	assert.InDelta(t, 4.4, Rating(Detail{VoteAverage: 8.8}, 5).Value, 1e-9)
	// not validated
	assert.Equal(t, 6.0, Rating(Detail{VoteAverage: 12}, 5).Value)
}

func TestStarRating_Counts(t *testing.T) {
	tests := []struct {
		value             float64
		full, half, empty int
	}{
		{4.0, 4, 0, 1},
		{4.4, 4, 0, 1},
		{4.5, 4, 1, 0},
		{0, 0, 0, 5},
		{-1, 0, 0, 5},
		{7.5, 5, 0, 0},
		{2.75, 2, 1, 2},
	}
	for _, tt := range tests {
		full, half, empty := StarRating{Value: tt.value, Max: 5}.Counts()
		assert.Equal(t, []int{tt.full, tt.half, tt.empty}, []int{full, half, empty}, "value %v", tt.value)
	}

	full, half, empty := StarRating{Value: 3, Max: 0}.Counts()
	assert.Zero(t, full+half+empty)
}

func TestGenreChips(t *testing.T) {
	chips, ok := GenreChips(Detail{})
	assert.False(t, ok)
	assert.Nil(t, chips)

	chips, ok = GenreChips(Detail{Genres: []Genre{}})
	assert.True(t, ok)
	assert.Empty(t, chips)

	chips, ok = GenreChips(Detail{Genres: []Genre{{ID: 1, Name: "Sci-Fi"}, {ID: 2, Name: "Drama"}}})
	assert.True(t, ok)
	assert.Equal(t, []string{"SCI-FI", "DRAMA"}, chips)
}

func TestGenres_AbsentVersusEmptyJSON(t *testing.T) {
	var absent, empty Detail
	require.NoError(t, json.Unmarshal([]byte(`{"title":"A"}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"title":"B","genres":[]}`), &empty))

	_, ok := GenreChips(absent)
	assert.False(t, ok)
	_, ok = GenreChips(empty)
	assert.True(t, ok)
}

func TestFormatReleaseDate(t *testing.T) {
	cases := map[string]string{
		"2010-07-16":           "July 16, 2010",
		"1999-03-05":           "March 05, 1999",
		"2010-07-16T00:00:00Z": "July 16, 2010",
		"":                     UnknownReleaseDate,
		"   ":                  UnknownReleaseDate,
		"not a date":           UnknownReleaseDate,
		"2010-13-45":           UnknownReleaseDate,
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatReleaseDate(in), "input %q", in)
	}
}
