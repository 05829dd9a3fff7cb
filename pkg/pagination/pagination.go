// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// # The limit=0 sentinel
//
// A limit of zero means "return every matching row on a single page". In
// that mode TotalPages collapses to 1 regardless of the total count.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Unlimited reports whether the caller asked for everything in one page.
func (p Params) Unlimited() bool {
	return p.Limit == 0
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
// In unlimited mode the offset is always zero.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Unlimited() {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages computes the page count for a result set of the given size.
//
//	limit 20, total 45 → 3
//	limit 0,  any total → 1
func (p Params) TotalPages(total int) int {
	if p.Unlimited() {
		return 1
	}
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid or negative values fall back to [DefaultPage] / [DefaultLimit].
// An explicit "limit=0" is preserved as the all-rows sentinel.
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 0 {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
