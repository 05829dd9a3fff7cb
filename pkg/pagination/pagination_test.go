// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviebunkers/api/pkg/pagination"
)

/*
TestParams_TotalPages covers page-count arithmetic including the limit=0
all-rows sentinel.
*/
func TestParams_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int
		want  int
	}{
		{"partial_last_page", 20, 45, 3},
		{"exact_fit", 20, 40, 2},
		{"single_short_page", 20, 5, 1},
		{"no_results", 20, 0, 0},
		{"unlimited_collapses_to_one", 0, 12345, 1},
		{"unlimited_empty_still_one", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Params{Page: 1, Limit: tt.limit}
			assert.Equal(t, tt.want, params.TotalPages(tt.total))
		})
	}
}

/*
TestParams_Offset verifies SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 7, Limit: 0}.Offset(), "unlimited mode ignores page")
}

/*
TestFromRequest covers query parsing, clamping, and preservation of the
explicit limit=0 sentinel.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/titles", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "/titles?page=3&limit=50", 3, 50},
		{"zero_limit_preserved", "/titles?limit=0", pagination.DefaultPage, 0},
		{"negative_page_clamped", "/titles?page=-2", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative_limit_clamped", "/titles?limit=-5", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage_falls_back", "/titles?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
