// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package schema

// CatalogLinkTable represents the 'catalog.link' table
type CatalogLinkTable struct {
	Table       string
	ID          string
	ParentID    string
	ContentType string
	LinkType    string
	Quality     string
	URL         string
	Title       string
	Remarks     string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogLink is the schema definition for catalog.link
var CatalogLink = CatalogLinkTable{
	Table:       "catalog.link",
	ID:          "id",
	ParentID:    "parentid",
	ContentType: "contenttype",
	LinkType:    "linktype",
	Quality:     "quality",
	URL:         "url",
	Title:       "title",
	Remarks:     "remarks",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogLinkTable) Columns() []string {
	return []string{
		t.ID, t.ParentID, t.ContentType, t.LinkType, t.Quality, t.URL,
		t.Title, t.Remarks, t.CreatedAt, t.UpdatedAt,
	}
}
