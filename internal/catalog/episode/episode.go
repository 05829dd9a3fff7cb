// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package episode manages TV show episodes: thin CRUD owned by a parent title
and season.
*/
package episode

import (
	"context"
	"time"
)

// Episode is one episode of a TV show title.
type Episode struct {
	ID            string     `json:"id"`
	TVShowID      string     `json:"tv_show_id"`
	SeasonID      string     `json:"season_id"`
	SeasonNumber  int        `json:"season_number"`
	EpisodeNumber int        `json:"episode_number"`
	Name          string     `json:"name"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       *time.Time `json:"air_date,omitempty"`
	Runtime       int        `json:"runtime,omitempty"`
	StillURL      string     `json:"still_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Repository defines the persistence contract for episodes.
type Repository interface {
	Create(context context.Context, episode *Episode) error
	FindByID(context context.Context, id string) (*Episode, error)

	// ListByTitle returns a title's episodes ordered by season then episode
	// number. A non-zero seasonNumber narrows to that season.
	ListByTitle(context context.Context, titleID string, seasonNumber int) ([]*Episode, error)

	Update(context context.Context, episode *Episode) error
	Delete(context context.Context, id string) error

	// DeleteByTitle bulk-removes every episode owned by a title.
	DeleteByTitle(context context.Context, titleID string) error

	// DeleteBySeason bulk-removes every episode of one season.
	DeleteBySeason(context context.Context, seasonID string) error
}
