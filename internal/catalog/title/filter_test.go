// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestFilterFromQuery verifies the permissive query-to-filter mapping:
recognized keys are structured, everything else is dropped silently.
*/
func TestFilterFromQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Filter
	}{
		{
			name: "all_recognized_keys",
			raw:  "search=fight&title_type=movie&source=tmdb&year=1999&genre=drama,thriller&language=en",
			want: Filter{
				Search:    "fight",
				TitleType: "movie",
				Source:    "tmdb",
				Year:      1999,
				Genres:    []string{"drama", "thriller"},
				Languages: []string{"en"},
			},
		},
		{
			name: "unknown_keys_dropped",
			raw:  "director=fincher&rating=5&search=fight",
			want: Filter{Search: "fight"},
		},
		{
			name: "bad_year_treated_as_absent",
			raw:  "year=nineteen99",
			want: Filter{},
		},
		{
			name: "negative_year_treated_as_absent",
			raw:  "year=-5",
			want: Filter{},
		},
		{
			name: "empty_query",
			raw:  "",
			want: Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			assert.NoError(t, err)

			assert.Equal(t, tt.want, FilterFromQuery(values))
		})
	}
}

/*
TestFilter_IsZero verifies the no-constraint check.
*/
func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Search: "x"}.IsZero())
	assert.False(t, Filter{Genres: []string{"drama"}}.IsZero())
	assert.False(t, Filter{Year: 1999}.IsZero())
}
