// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package schema

// UserDataTable represents the 'users.userdata' table.
//
// Exactly one row per account (unique userid). The four title sets are
// uuid[] columns mutated with single atomic array updates.
type UserDataTable struct {
	Table           string
	ID              string
	UserID          string
	SeenTitles      string
	UnseenTitles    string
	StarredTitles   string
	FavouriteTitles string
	CreatedAt       string
	UpdatedAt       string
}

// UserData is the schema definition for users.userdata
var UserData = UserDataTable{
	Table:           "users.userdata",
	ID:              "id",
	UserID:          "userid",
	SeenTitles:      "seentitles",
	UnseenTitles:    "unseentitles",
	StarredTitles:   "starredtitles",
	FavouriteTitles: "favouritetitles",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t UserDataTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SeenTitles, t.UnseenTitles, t.StarredTitles,
		t.FavouriteTitles, t.CreatedAt, t.UpdatedAt,
	}
}
