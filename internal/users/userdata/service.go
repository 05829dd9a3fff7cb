// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package userdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moviebunkers/api/internal/platform/validate"
)

// # Service Layer

// Service orchestrates watch-state reads and mutations.
//
// The atomicity guarantees live in the repository (single-statement
// updates); this layer adds input validation and audit logging.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

/*
Get returns the caller's watch-state, creating an empty record on first
access.

Returns:
  - *UserData: The caller's record
  - error: Storage failures
*/
func (service *Service) Get(context context.Context, userID string) (*UserData, error) {
	data, err := service.repository.GetOrInit(context, userID)
	if err != nil {
		return nil, fmt.Errorf("userdata_service_get_failed: %w", err)
	}
	return data, nil
}

/*
MarkSeen records that the user has watched a title.

Description: Adds the title to the seen set and evicts it from the unseen
set atomically, so the two are never simultaneously populated for one title.

Returns:
  - bool: true when the post-condition holds (always, absent an error)
  - error: Validation or storage failures
*/
func (service *Service) MarkSeen(context context.Context, userID, titleID string) (bool, error) {
	if err := validateTitleID(titleID); err != nil {
		return false, err
	}

	if err := service.repository.AddToSeen(context, userID, titleID); err != nil {
		return false, fmt.Errorf("userdata_service_mark_seen_failed: %w", err)
	}

	service.logger.Debug("userdata_marked_seen",
		slog.String("user_id", userID),
		slog.String("title_id", titleID),
	)

	return true, nil
}

/*
MarkUnseen records that the user wants a title back on the to-watch pile.
Symmetric inverse of [Service.MarkSeen].

Returns:
  - bool: true when the post-condition holds
  - error: Validation or storage failures
*/
func (service *Service) MarkUnseen(context context.Context, userID, titleID string) (bool, error) {
	if err := validateTitleID(titleID); err != nil {
		return false, err
	}

	if err := service.repository.AddToUnseen(context, userID, titleID); err != nil {
		return false, fmt.Errorf("userdata_service_mark_unseen_failed: %w", err)
	}

	return true, nil
}

/*
Star adds a title to the starred set. Re-starring is a no-op success.

Returns:
  - bool: true when the post-condition holds
  - error: Validation or storage failures
*/
func (service *Service) Star(context context.Context, userID, titleID string) (bool, error) {
	return service.addTo(context, userID, titleID, SetStarred)
}

/*
Unstar removes a title from the starred set. Removing an absent title is
still success: the post-condition (title not in the set) holds either way.

Returns:
  - bool: true when the post-condition holds
  - error: Validation or storage failures
*/
func (service *Service) Unstar(context context.Context, userID, titleID string) (bool, error) {
	return service.removeFrom(context, userID, titleID, SetStarred)
}

/*
Favourite adds a title to the favourite set.

Returns:
  - bool: true when the post-condition holds
  - error: Validation or storage failures
*/
func (service *Service) Favourite(context context.Context, userID, titleID string) (bool, error) {
	return service.addTo(context, userID, titleID, SetFavourite)
}

/*
Unfavourite removes a title from the favourite set.

Returns:
  - bool: true when the post-condition holds
  - error: Validation or storage failures
*/
func (service *Service) Unfavourite(context context.Context, userID, titleID string) (bool, error) {
	return service.removeFrom(context, userID, titleID, SetFavourite)
}

func (service *Service) addTo(context context.Context, userID, titleID string, set Set) (bool, error) {
	if err := validateTitleID(titleID); err != nil {
		return false, err
	}

	if err := service.repository.AddToSet(context, userID, titleID, set); err != nil {
		return false, fmt.Errorf("userdata_service_add_failed: %w", err)
	}

	return true, nil
}

func (service *Service) removeFrom(context context.Context, userID, titleID string, set Set) (bool, error) {
	if err := validateTitleID(titleID); err != nil {
		return false, err
	}

	if err := service.repository.RemoveFromSet(context, userID, titleID, set); err != nil {
		return false, fmt.Errorf("userdata_service_remove_failed: %w", err)
	}

	return true, nil
}

// validateTitleID rejects title references that are not UUIDs before they
// reach the uuid[] columns.
func validateTitleID(titleID string) error {
	validator := &validate.Validator{}
	return validator.
		Required("title_id", titleID).
		UUID("title_id", titleID).
		Err()
}
