// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package userdata manages per-user watch-state: the four sets of title
references (seen, unseen, starred, favourite) every account carries.

# Invariants

  - Exactly one row per account, created lazily on first touch. Concurrent
    first touches must not create duplicates (atomic upsert, never
    check-then-insert).
  - A title id is never in both seen and unseen: adding to one removes it
    from the other in the same atomic statement.
  - All four sets are deduplicated; re-adding is a no-op.
  - Removing an absent title is still success — the post-condition holds.
*/
package userdata

import (
	"context"
	"time"
)

// # Domain Entities

// UserData is the per-account watch-state record.
type UserData struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	SeenTitles      []string  `json:"seen_titles"`
	UnseenTitles    []string  `json:"unseen_titles"`
	StarredTitles   []string  `json:"starred_titles"`
	FavouriteTitles []string  `json:"favourite_titles"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Set names the two independent (non-exclusive) title sets.
type Set string

const (
	SetStarred   Set = "starred"
	SetFavourite Set = "favourite"
)

// # Repository Contracts

// Repository defines the persistence contract for watch-state.
//
// Every mutator is a single atomic statement against the store. Mutators on
// a user with no row yet create the row in the same statement.
type Repository interface {
	/*
		GetOrInit returns the user's watch-state, lazily creating an empty
		record if none exists. Safe under concurrent first access.

		Returns:
		  - *UserData: The (possibly fresh) record
		  - error: Storage failures
	*/
	GetOrInit(context context.Context, userID string) (*UserData, error)

	/*
		AddToSeen adds titleID to the seen set and removes it from the
		unseen set in one atomic statement.

		Returns:
		  - error: Storage failures
	*/
	AddToSeen(context context.Context, userID, titleID string) error

	/*
		AddToUnseen is the symmetric inverse of AddToSeen.

		Returns:
		  - error: Storage failures
	*/
	AddToUnseen(context context.Context, userID, titleID string) error

	/*
		AddToSet idempotently adds titleID to the starred or favourite set.

		Returns:
		  - error: Storage failures
	*/
	AddToSet(context context.Context, userID, titleID string, set Set) error

	/*
		RemoveFromSet removes titleID from the starred or favourite set.
		Removing an absent title is not an error.

		Returns:
		  - error: Storage failures
	*/
	RemoveFromSet(context context.Context, userID, titleID string, set Set) error
}
