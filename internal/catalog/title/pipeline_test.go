// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/query"
)

/*
TestStageOrder_AgreesWithStages pins the canonical stage sequence against
the actual builder steps so the two cannot drift apart.
*/
func TestStageOrder_AgreesWithStages(t *testing.T) {
	pipeline := NewPipeline(Filter{}, "", nil, pagination.Params{Page: 1, Limit: 20})

	var actual []string
	for _, pipelineStage := range pipeline.stages() {
		actual = append(actual, pipelineStage.name)
	}

	assert.Equal(t, StageOrder(), actual)
}

/*
TestPipeline_Build_Fragments verifies the assembled statement contains the
stage contributions in the right places.
*/
func TestPipeline_Build_Fragments(t *testing.T) {
	pipeline := NewPipeline(
		Filter{
			Search:    "fight",
			TitleType: "movie",
			Year:      1999,
			Genres:    []string{"drama"},
		},
		"caller-id",
		query.SortOrder{{Field: "year", Direction: query.Descending}},
		pagination.Params{Page: 2, Limit: 20},
	)

	sql, args := pipeline.Build()

	// $1 is always the caller, then the match placeholders, then offset/limit.
	require.Len(t, args, 7)
	assert.Equal(t, "caller-id", args[0])
	assert.Equal(t, "%fight%", args[1])
	assert.Equal(t, "movie", args[2])
	assert.Equal(t, 1999, args[3])
	assert.Equal(t, []string{"drama"}, args[4])
	assert.Equal(t, 20, args[5])
	assert.Equal(t, 20, args[6])

	for _, fragment := range []string{
		"WITH matched AS (",
		"LEFT JOIN users.userdata ud ON ud.userid = $1::uuid",
		"COUNT(*) OVER() AS totalresults",
		"COALESCE(t.id = ANY(ud.seentitles), FALSE) AS seenbyuser",
		"COALESCE(t.id = ANY(ud.favouritetitles), FALSE) AS favouritebyuser",
		"t.title ILIKE $2 OR t.originaltitle ILIKE $2",
		"t.titletype = $3",
		"t.year = $4",
		"t.genres && $5::text[]",
		"ORDER BY t.year DESC, t.id DESC",
		"OFFSET $6",
		"LIMIT $7",
		"LEFT JOIN users.account owner ON owner.id = m.addedby",
		"LEFT JOIN users.account modifier ON modifier.id = m.lastmodifiedby",
		"ORDER BY m.year DESC, m.id DESC",
	} {
		assert.Contains(t, sql, fragment)
	}

	// The password hash column must never be projected.
	assert.NotContains(t, sql, "passwordhash")
}

/*
TestPipeline_Build_Anonymous verifies the NULL caller argument that turns
every membership flag false.
*/
func TestPipeline_Build_Anonymous(t *testing.T) {
	pipeline := NewPipeline(Filter{}, "", nil, pagination.Params{Page: 1, Limit: 20})

	sql, args := pipeline.Build()

	require.NotEmpty(t, args)
	assert.Nil(t, args[0])
	assert.Contains(t, sql, "WHERE TRUE")
}

/*
TestPipeline_Build_Unlimited verifies that the limit=0 sentinel omits the
LIMIT clause entirely.
*/
func TestPipeline_Build_Unlimited(t *testing.T) {
	pipeline := NewPipeline(Filter{}, "", nil, pagination.Params{Page: 1, Limit: 0})

	sql, args := pipeline.Build()

	assert.NotContains(t, sql, "LIMIT")
	// caller + offset only
	assert.Len(t, args, 2)
}

/*
TestPipeline_AppliedSort verifies the allow-list: unknown well-formed
fields are dropped, and an empty survivor set falls back to the default.
*/
func TestPipeline_AppliedSort(t *testing.T) {
	tests := []struct {
		name string
		sort query.SortOrder
		want query.SortOrder
	}{
		{
			name: "known_fields_survive_in_order",
			sort: query.SortOrder{
				{Field: "year", Direction: query.Descending},
				{Field: "title", Direction: query.Ascending},
			},
			want: query.SortOrder{
				{Field: "year", Direction: query.Descending},
				{Field: "title", Direction: query.Ascending},
			},
		},
		{
			name: "unknown_field_dropped",
			sort: query.SortOrder{
				{Field: "popularity", Direction: query.Descending},
				{Field: "year", Direction: query.Ascending},
			},
			want: query.SortOrder{{Field: "year", Direction: query.Ascending}},
		},
		{
			name: "all_unknown_falls_back_to_default",
			sort: query.SortOrder{{Field: "popularity", Direction: query.Descending}},
			want: query.SortOrder{{Field: query.DefaultSortField, Direction: query.Descending}},
		},
		{
			name: "nil_falls_back_to_default",
			sort: nil,
			want: query.SortOrder{{Field: query.DefaultSortField, Direction: query.Descending}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(Filter{}, "", tt.sort, pagination.Params{Page: 1, Limit: 20})
			assert.Equal(t, tt.want, pipeline.AppliedSort())
		})
	}
}

/*
TestPipeline_Build_SearchSharesPlaceholder verifies that both ILIKE arms
reuse one placeholder, keeping the arg list minimal.
*/
func TestPipeline_Build_SearchSharesPlaceholder(t *testing.T) {
	pipeline := NewPipeline(Filter{Search: "club"}, "", nil, pagination.Params{Page: 1, Limit: 20})

	sql, args := pipeline.Build()

	assert.Equal(t, 2, strings.Count(sql, "$2"), "title and originaltitle share the search arg")
	assert.Len(t, args, 4) // caller, search, offset, limit
}
