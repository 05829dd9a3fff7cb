// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package title implements the catalog's primary entity and its aggregation
engine: the pipeline that joins titles with the caller's watch-state,
derives per-title membership flags, and pages the result.

# Architecture

  - Entities: Title (movie or TV show, discriminated by TitleType),
    TitleSummary (Title + per-caller flags + owner identity), Page envelope.
  - Pipeline: an explicit builder with named stages in a fixed, tested
    order (see pipeline.go). Stage order is load-bearing — filtering and
    counting run before the join-heavy owner lookup.
  - Ownership: added_by / last_modified_by are soft references to accounts;
    the embedded identity carries userName, email, role and createdAt only.
*/
package title

import (
	"time"

	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/pkg/query"
)

// # Discriminators

// TitleType tells a movie from a TV show.
type TitleType string

const (
	TypeMovie TitleType = "movie"
	TypeTV    TitleType = "tv"
)

// IsValid reports whether the type is one of the closed enumeration values.
func (t TitleType) IsValid() bool {
	return t == TypeMovie || t == TypeTV
}

// Source records where the title metadata came from. An external source
// requires its matching external id (checked at create time).
type Source string

const (
	SourceTmdb   Source = "tmdb"
	SourceImdb   Source = "imdb"
	SourceCustom Source = "custom"
)

// IsValid reports whether the source is one of the closed enumeration values.
func (s Source) IsValid() bool {
	return s == SourceTmdb || s == SourceImdb || s == SourceCustom
}

// # Domain Entities

// CastMember is one credited cast entry, stored as JSONB.
type CastMember struct {
	Name       string `json:"name"`
	Character  string `json:"character,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	Order      int    `json:"order"`
}

// EpisodeSnapshot is the denormalized next/last episode summary carried on
// TV titles, stored as JSONB.
type EpisodeSnapshot struct {
	SeasonNumber  int        `json:"season_number"`
	EpisodeNumber int        `json:"episode_number"`
	Name          string     `json:"name,omitempty"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       *time.Time `json:"air_date,omitempty"`
}

// Title is a movie or TV show record.
//
// External ids (TmdbID, ImdbID) are each globally unique when present —
// sparse uniqueness, absence never collides.
type Title struct {
	ID        string    `json:"id"`
	TitleType TitleType `json:"title_type"`
	Source    Source    `json:"source"`

	TmdbID *int64  `json:"tmdb_id,omitempty"`
	ImdbID *string `json:"imdb_id,omitempty"`

	Title         string `json:"title"`
	OriginalTitle string `json:"original_title,omitempty"`
	Tagline       string `json:"tagline,omitempty"`
	Overview      string `json:"overview,omitempty"`

	Genres      []string     `json:"genres"`
	Languages   []string     `json:"languages"`
	CastMembers []CastMember `json:"cast_members,omitempty"`
	Directors   []string     `json:"directors,omitempty"`

	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Year        int        `json:"year,omitempty"`
	Runtime     int        `json:"runtime,omitempty"`
	PosterURL   string     `json:"poster_url,omitempty"`
	Status      string     `json:"status,omitempty"`

	// TV-only fields; zero-valued for movies.
	NumberOfSeasons  int              `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int              `json:"number_of_episodes,omitempty"`
	Networks         []string         `json:"networks,omitempty"`
	InProduction     bool             `json:"in_production,omitempty"`
	NextEpisode      *EpisodeSnapshot `json:"next_episode,omitempty"`
	LastEpisode      *EpisodeSnapshot `json:"last_episode,omitempty"`

	// Soft references to users.account ids, not enforced by the store.
	AddedBy        string `json:"added_by,omitempty"`
	LastModifiedBy string `json:"last_modified_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerRef is the transport-safe identity embedded for added_by /
// last_modified_by. Never carries the password hash.
type OwnerRef struct {
	UserName  string       `json:"user_name"`
	Email     string       `json:"email"`
	Role      sec.UserRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// TitleSummary is one aggregated list row: the title, the caller's four
// membership flags, and the resolved owner/modifier identities.
//
// For an anonymous caller, or one who has never touched watch-state, all
// four flags are false — never an error.
type TitleSummary struct {
	Title

	SeenByUser      bool `json:"seen_by_user"`
	UnseenByUser    bool `json:"unseen_by_user"`
	StarredByUser   bool `json:"starred_by_user"`
	FavouriteByUser bool `json:"favourite_by_user"`

	AddedByUser        *OwnerRef `json:"added_by_user,omitempty"`
	LastModifiedByUser *OwnerRef `json:"last_modified_by_user,omitempty"`
}

// Page is the aggregation result envelope.
type Page struct {
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	SortOrder    query.SortOrder `json:"sort_order"`
	List         []*TitleSummary `json:"list"`
}
