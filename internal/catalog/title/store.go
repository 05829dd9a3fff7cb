// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import "context"

// # Repository Contracts

// Repository defines the persistence contract for titles.
type Repository interface {
	/*
		Aggregate runs the full pipeline and returns one page of summaries
		plus the pre-pagination total.

		Parameters:
		  - context: context.Context
		  - pipeline: *Pipeline (fully configured for one request)

		Returns:
		  - []*TitleSummary: The page rows, flags and owners resolved
		  - int: Total matches before skip/limit
		  - error: Storage failures
	*/
	Aggregate(context context.Context, pipeline *Pipeline) ([]*TitleSummary, int, error)

	/*
		Create inserts a new title row.

		Returns:
		  - error: apperr.Conflict on duplicate external id, storage failures
	*/
	Create(context context.Context, title *Title) error

	/*
		FindByID retrieves a title by its internal id.

		Returns:
		  - *Title: Loaded entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Title, error)

	/*
		FindByTmdbID probes for a title by external tmdb id.

		Returns:
		  - *Title: The match, or nil when none exists (a legitimate miss
		    is not an error here — existence probes expect it)
		  - error: Storage failures only
	*/
	FindByTmdbID(context context.Context, tmdbID int64) (*Title, error)

	/*
		FindByImdbID probes for a title by external imdb id.

		Returns:
		  - *Title: The match, or nil when none exists
		  - error: Storage failures only
	*/
	FindByImdbID(context context.Context, imdbID string) (*Title, error)

	/*
		Update persists all mutable fields of an existing title.

		Returns:
		  - error: apperr.NotFound if the title vanished, conflict or
		    storage failures
	*/
	Update(context context.Context, title *Title) error

	/*
		Delete removes a title row by id. Dependent seasons, episodes and
		links are NOT cascaded — the service deletes them explicitly.

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) error
}
