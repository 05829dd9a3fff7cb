// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"net/url"
	"strconv"

	"github.com/moviebunkers/api/pkg/query"
)

// Filter is the structured match predicate for title queries.
//
// Zero-valued fields mean "no constraint". Multi-valued fields (genres,
// languages) match by overlap: a title qualifies when it carries at least
// one of the requested values.
type Filter struct {
	Search    string
	TitleType string
	Genres    []string
	Languages []string
	Source    string
	Year      int
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.TitleType == "" && f.Source == "" && f.Year == 0 &&
		len(f.Genres) == 0 && len(f.Languages) == 0
}

// FilterFromQuery maps recognized query parameters onto a [Filter].
//
// Filtering is permissive: unrecognized keys are dropped silently, and a
// non-numeric year is treated as absent rather than rejected. Only the
// sort directive (parsed elsewhere) hard-fails on malformed input.
func FilterFromQuery(values url.Values) Filter {
	filter := Filter{
		Search:    values.Get("search"),
		TitleType: values.Get("title_type"),
		Source:    values.Get("source"),
		Genres:    query.StringSlice(values.Get("genre")),
		Languages: query.StringSlice(values.Get("language")),
	}

	if rawYear := values.Get("year"); rawYear != "" {
		if year, err := strconv.Atoi(rawYear); err == nil && year > 0 {
			filter.Year = year
		}
	}

	return filter
}
