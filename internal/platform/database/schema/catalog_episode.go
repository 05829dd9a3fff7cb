// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package schema

// CatalogEpisodeTable represents the 'catalog.episode' table
type CatalogEpisodeTable struct {
	Table         string
	ID            string
	TVShowID      string
	SeasonID      string
	SeasonNumber  string
	EpisodeNumber string
	Name          string
	Overview      string
	AirDate       string
	Runtime       string
	StillURL      string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogEpisode is the schema definition for catalog.episode
var CatalogEpisode = CatalogEpisodeTable{
	Table:         "catalog.episode",
	ID:            "id",
	TVShowID:      "tvshowid",
	SeasonID:      "seasonid",
	SeasonNumber:  "seasonnumber",
	EpisodeNumber: "episodenumber",
	Name:          "name",
	Overview:      "overview",
	AirDate:       "airdate",
	Runtime:       "runtime",
	StillURL:      "stillurl",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CatalogEpisodeTable) Columns() []string {
	return []string{
		t.ID, t.TVShowID, t.SeasonID, t.SeasonNumber, t.EpisodeNumber, t.Name,
		t.Overview, t.AirDate, t.Runtime, t.StillURL, t.CreatedAt, t.UpdatedAt,
	}
}
