// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package schema

// CatalogSeasonTable represents the 'catalog.season' table
type CatalogSeasonTable struct {
	Table        string
	ID           string
	TVShowID     string
	SeasonNumber string
	Name         string
	Overview     string
	AirDate      string
	EpisodeCount string
	PosterURL    string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogSeason is the schema definition for catalog.season
var CatalogSeason = CatalogSeasonTable{
	Table:        "catalog.season",
	ID:           "id",
	TVShowID:     "tvshowid",
	SeasonNumber: "seasonnumber",
	Name:         "name",
	Overview:     "overview",
	AirDate:      "airdate",
	EpisodeCount: "episodecount",
	PosterURL:    "posterurl",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogSeasonTable) Columns() []string {
	return []string{
		t.ID, t.TVShowID, t.SeasonNumber, t.Name, t.Overview, t.AirDate,
		t.EpisodeCount, t.PosterURL, t.CreatedAt, t.UpdatedAt,
	}
}
