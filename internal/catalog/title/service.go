// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/query"
	"github.com/moviebunkers/api/pkg/slice"
	"github.com/moviebunkers/api/pkg/uuid"
)

// DependentRemover bulk-deletes one kind of dependent entity (seasons,
// episodes, links) owned by a title. Title deletion is NOT cascaded by the
// store; the service calls these explicitly.
type DependentRemover interface {
	DeleteByTitle(context context.Context, titleID string) error
}

// # Service Layer

// Service orchestrates catalog reads (through the aggregation pipeline)
// and title lifecycle writes.
type Service struct {
	repository Repository
	dependents []DependentRemover
	logger     *slog.Logger
}

// NewService constructs a new [Service]. The dependents are consulted, in
// order, when a title is deleted.
func NewService(repository Repository, logger *slog.Logger, dependents ...DependentRemover) *Service {
	return &Service{
		repository: repository,
		dependents: dependents,
		logger:     logger,
	}
}

/*
ListTitles runs the aggregation pipeline for one request.

Description: Builds the pipeline from the caller's filter, sort and page
parameters plus their identity, executes it, and shapes the page envelope.
An anonymous caller (nil principal) gets all membership flags false.

Parameters:
  - context: context.Context
  - principal: *sec.Principal (may be nil)
  - filter: Filter
  - sort: query.SortOrder (already parsed and shape-validated)
  - page: pagination.Params

Returns:
  - *Page: The result envelope
  - error: Storage failures
*/
func (service *Service) ListTitles(
	context context.Context,
	principal *sec.Principal,
	filter Filter,
	sort query.SortOrder,
	page pagination.Params,
) (*Page, error) {

	userID := ""
	if principal != nil {
		userID = principal.UserID
	}

	pipeline := NewPipeline(filter, userID, sort, page)

	summaries, total, err := service.repository.Aggregate(context, pipeline)
	if err != nil {
		return nil, fmt.Errorf("title_service_list_failed: %w", err)
	}

	return &Page{
		Page:         page.Page,
		TotalPages:   page.TotalPages(total),
		TotalResults: total,
		SortOrder:    pipeline.AppliedSort(),
		List:         summaries,
	}, nil
}

/*
GetTitle retrieves one title by internal id.

Returns:
  - *Title: The hydrated entity
  - error: Not found or storage failures
*/
func (service *Service) GetTitle(context context.Context, id string) (*Title, error) {
	title, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("title_service_get_failed: %w", err)
	}
	return title, nil
}

/*
CreateTitle adds a title to the catalog.

Description: Enforces the source/external-id pairing invariants, probes for
external id collisions (CONFLICT naming the colliding id), stamps added_by
and last_modified_by with the caller, and inserts.

Parameters:
  - context: context.Context
  - principal: *sec.Principal (the authenticated moderator)
  - input: *Title (validated at the boundary; ID and stamps overwritten here)

Returns:
  - *Title: The created entity
  - error: Validation, conflict, or storage failures
*/
func (service *Service) CreateTitle(context context.Context, principal *sec.Principal, input *Title) (*Title, error) {

	if err := checkSourceInvariants(input); err != nil {
		return nil, err
	}
	if err := service.checkExternalIDCollision(context, input, ""); err != nil {
		return nil, err
	}

	input.ID = uuid.New()
	input.AddedBy = principal.UserID
	input.LastModifiedBy = principal.UserID
	normalizeCollections(input)

	if err := service.repository.Create(context, input); err != nil {
		return nil, fmt.Errorf("title_service_create_failed: %w", err)
	}

	service.logger.Info("title_created",
		slog.String("title_id", input.ID),
		slog.String("title", input.Title),
		slog.String("added_by", principal.UserName),
	)

	return input, nil
}

/*
UpdateTitle replaces the mutable fields of an existing title.

Description: Loads the current row, overlays the input (full replacement of
content fields; identity and added_by are immutable), re-checks the source
invariants and external-id uniqueness, stamps last_modified_by.

Returns:
  - *Title: The updated entity
  - error: Validation, not found, conflict, or storage failures
*/
func (service *Service) UpdateTitle(context context.Context, principal *sec.Principal, id string, input *Title) (*Title, error) {

	current, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("title_service_update_lookup_failed: %w", err)
	}

	if err := checkSourceInvariants(input); err != nil {
		return nil, err
	}
	if err := service.checkExternalIDCollision(context, input, current.ID); err != nil {
		return nil, err
	}

	input.ID = current.ID
	input.AddedBy = current.AddedBy
	input.CreatedAt = current.CreatedAt
	input.LastModifiedBy = principal.UserID
	normalizeCollections(input)

	if err := service.repository.Update(context, input); err != nil {
		return nil, fmt.Errorf("title_service_update_failed: %w", err)
	}

	service.logger.Info("title_updated",
		slog.String("title_id", input.ID),
		slog.String("modified_by", principal.UserName),
	)

	return input, nil
}

/*
DeleteTitle removes a title and its dependent seasons, episodes and links.

Description: Dependents go first so a mid-flight failure never leaves
orphans pointing at a missing parent.

Returns:
  - error: Not found or storage failures
*/
func (service *Service) DeleteTitle(context context.Context, id string) error {

	// Existence check up front: a miss answers NotFound before any
	// dependent rows are touched.
	if _, err := service.repository.FindByID(context, id); err != nil {
		return fmt.Errorf("title_service_delete_lookup_failed: %w", err)
	}

	for _, dependent := range service.dependents {
		if err := dependent.DeleteByTitle(context, id); err != nil {
			return fmt.Errorf("title_service_delete_dependents_failed: %w", err)
		}
	}

	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("title_service_delete_failed: %w", err)
	}

	service.logger.Warn("title_deleted", slog.String("title_id", id))

	return nil
}

// # Invariants

// checkSourceInvariants enforces the closed enumerations and the
// source ⇒ external-id pairing: an external source must carry its id.
func checkSourceInvariants(input *Title) error {
	if !input.TitleType.IsValid() {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "title_type", Message: "Must be movie or tv",
		})
	}
	if !input.Source.IsValid() {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "source", Message: "Must be tmdb, imdb or custom",
		})
	}
	if input.Source == SourceTmdb && input.TmdbID == nil {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "tmdb_id", Message: "Required when source is tmdb",
		})
	}
	if input.Source == SourceImdb && input.ImdbID == nil {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "imdb_id", Message: "Required when source is imdb",
		})
	}
	return nil
}

// checkExternalIDCollision probes both sparse-unique external ids and
// reports a CONFLICT naming the colliding id. selfID excludes the title
// being updated from its own collision check.
//
// The partial unique indexes remain the backstop for the race where two
// creates probe simultaneously.
func (service *Service) checkExternalIDCollision(context context.Context, input *Title, selfID string) error {
	if input.TmdbID != nil {
		existing, err := service.repository.FindByTmdbID(context, *input.TmdbID)
		if err != nil {
			return fmt.Errorf("title_service_tmdb_probe_failed: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return apperr.Conflict(
				"A title with tmdb_id " + strconv.FormatInt(*input.TmdbID, 10) + " already exists")
		}
	}

	if input.ImdbID != nil {
		existing, err := service.repository.FindByImdbID(context, *input.ImdbID)
		if err != nil {
			return fmt.Errorf("title_service_imdb_probe_failed: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return apperr.Conflict("A title with imdb_id " + *input.ImdbID + " already exists")
		}
	}

	return nil
}

// normalizeCollections deduplicates the multi-valued fields and replaces
// nil slices with empty ones so the array columns never see NULL.
func normalizeCollections(input *Title) {
	input.Genres = slice.Dedupe(orEmpty(input.Genres))
	input.Languages = slice.Dedupe(orEmpty(input.Languages))
	input.Networks = slice.Dedupe(orEmpty(input.Networks))
	input.Directors = slice.Dedupe(orEmpty(input.Directors))
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
