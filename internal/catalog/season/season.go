// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package season manages TV show seasons: thin CRUD owned by a parent title.

Seasons are created through their own endpoints, independent of the parent
title's write path, and deleted individually or in bulk by parent id when
the title goes away.
*/
package season

import (
	"context"
	"time"
)

// Season is one season of a TV show title.
type Season struct {
	ID           string     `json:"id"`
	TVShowID     string     `json:"tv_show_id"`
	SeasonNumber int        `json:"season_number"`
	Name         string     `json:"name"`
	Overview     string     `json:"overview,omitempty"`
	AirDate      *time.Time `json:"air_date,omitempty"`
	EpisodeCount int        `json:"episode_count"`
	PosterURL    string     `json:"poster_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Repository defines the persistence contract for seasons.
type Repository interface {
	Create(context context.Context, season *Season) error
	FindByID(context context.Context, id string) (*Season, error)

	// ListByTitle returns all seasons of a title ordered by season number.
	ListByTitle(context context.Context, titleID string) ([]*Season, error)

	Update(context context.Context, season *Season) error
	Delete(context context.Context, id string) error

	// DeleteByTitle bulk-removes every season owned by a title.
	DeleteByTitle(context context.Context, titleID string) error
}
