// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package query_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/pkg/query"
)

/*
TestParseSort covers the directive grammar: well-formed tokens parse in
order, the empty directive falls back to the default, and any malformed
token rejects the whole directive.
*/
func TestParseSort(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     query.SortOrder
		badToken string
	}{
		{
			name: "single_desc",
			raw:  "year.desc",
			want: query.SortOrder{{Field: "year", Direction: query.Descending}},
		},
		{
			name: "multi_field_order_preserved",
			raw:  "year.desc,title.asc",
			want: query.SortOrder{
				{Field: "year", Direction: query.Descending},
				{Field: "title", Direction: query.Ascending},
			},
		},
		{
			name: "whitespace_tolerated",
			raw:  " year.desc , title.asc ",
			want: query.SortOrder{
				{Field: "year", Direction: query.Descending},
				{Field: "title", Direction: query.Ascending},
			},
		},
		{
			name: "empty_falls_back_to_default",
			raw:  "",
			want: query.SortOrder{{Field: query.DefaultSortField, Direction: query.Descending}},
		},
		{
			name:     "missing_direction",
			raw:      "year",
			badToken: "year",
		},
		{
			name:     "unknown_direction",
			raw:      "year.down",
			badToken: "year.down",
		},
		{
			name:     "one_bad_token_rejects_all",
			raw:      "year.desc,bogus,title.asc",
			badToken: "bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := query.ParseSort(tt.raw)

			if tt.badToken != "" {
				require.Error(t, err)
				var invalid *query.InvalidSortError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, tt.badToken, invalid.Token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, order)
		})
	}
}

/*
TestSortOrder_MarshalJSON verifies the ordered-object rendering that the
page envelope echoes back.
*/
func TestSortOrder_MarshalJSON(t *testing.T) {
	order := query.SortOrder{
		{Field: "year", Direction: query.Descending},
		{Field: "title", Direction: query.Ascending},
	}

	encoded, err := json.Marshal(order)
	require.NoError(t, err)

	// Field order must survive encoding, so compare the raw bytes.
	assert.Equal(t, `{"year":-1,"title":1}`, string(encoded))
}

/*
TestStringSlice verifies comma-separated multi-value parsing.
*/
func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"drama", "thriller"}, query.StringSlice("drama, thriller"))
	assert.Equal(t, []string{"drama"}, query.StringSlice("drama,,  "))
	assert.Nil(t, query.StringSlice(""))
}

/*
TestIntSlice verifies that non-numeric entries are dropped, not fatal.
*/
func TestIntSlice(t *testing.T) {
	assert.Equal(t, []int{1999, 2024}, query.IntSlice([]string{"1999", "abc", "2024"}))
	assert.Nil(t, query.IntSlice([]string{"abc"}))
	assert.Nil(t, query.IntSlice(nil))
}
