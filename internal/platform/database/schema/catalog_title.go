// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

// Package schema centralizes table and column identifiers so SQL built with
// fmt.Sprintf never hard-codes a name twice.
package schema

// CatalogTitleTable represents the 'catalog.title' table
type CatalogTitleTable struct {
	Table            string
	ID               string
	TitleType        string
	Source           string
	TmdbID           string
	ImdbID           string
	Title            string
	OriginalTitle    string
	Tagline          string
	Overview         string
	Genres           string
	Languages        string
	CastMembers      string
	Directors        string
	ReleaseDate      string
	Year             string
	Runtime          string
	PosterURL        string
	Status           string
	NumberOfSeasons  string
	NumberOfEpisodes string
	Networks         string
	InProduction     string
	NextEpisode      string
	LastEpisode      string
	AddedBy          string
	LastModifiedBy   string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogTitle is the schema definition for catalog.title
var CatalogTitle = CatalogTitleTable{
	Table:            "catalog.title",
	ID:               "id",
	TitleType:        "titletype",
	Source:           "source",
	TmdbID:           "tmdbid",
	ImdbID:           "imdbid",
	Title:            "title",
	OriginalTitle:    "originaltitle",
	Tagline:          "tagline",
	Overview:         "overview",
	Genres:           "genres",
	Languages:        "languages",
	CastMembers:      "castmembers",
	Directors:        "directors",
	ReleaseDate:      "releasedate",
	Year:             "year",
	Runtime:          "runtime",
	PosterURL:        "posterurl",
	Status:           "status",
	NumberOfSeasons:  "numberofseasons",
	NumberOfEpisodes: "numberofepisodes",
	Networks:         "networks",
	InProduction:     "inproduction",
	NextEpisode:      "nextepisode",
	LastEpisode:      "lastepisode",
	AddedBy:          "addedby",
	LastModifiedBy:   "lastmodifiedby",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CatalogTitleTable) Columns() []string {
	return []string{
		t.ID, t.TitleType, t.Source, t.TmdbID, t.ImdbID, t.Title, t.OriginalTitle,
		t.Tagline, t.Overview, t.Genres, t.Languages, t.CastMembers, t.Directors,
		t.ReleaseDate, t.Year, t.Runtime, t.PosterURL, t.Status,
		t.NumberOfSeasons, t.NumberOfEpisodes, t.Networks, t.InProduction,
		t.NextEpisode, t.LastEpisode, t.AddedBy, t.LastModifiedBy,
		t.CreatedAt, t.UpdatedAt,
	}
}
