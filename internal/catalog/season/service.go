// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package season

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moviebunkers/api/pkg/uuid"
)

// EpisodeRemover bulk-deletes the episodes of one season. Deleting a season
// is not cascaded by the store.
type EpisodeRemover interface {
	DeleteBySeason(context context.Context, seasonID string) error
}

// Service orchestrates season CRUD.
type Service struct {
	repository Repository
	episodes   EpisodeRemover
	logger     *slog.Logger
}

func NewService(repository Repository, episodes EpisodeRemover, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		episodes:   episodes,
		logger:     logger,
	}
}

func (service *Service) CreateSeason(context context.Context, titleID string, input *Season) (*Season, error) {
	input.ID = uuid.New()
	input.TVShowID = titleID

	if err := service.repository.Create(context, input); err != nil {
		return nil, fmt.Errorf("season_service_create_failed: %w", err)
	}

	service.logger.Info("season_created",
		slog.String("title_id", titleID),
		slog.Int("season_number", input.SeasonNumber),
	)

	return input, nil
}

func (service *Service) GetSeason(context context.Context, id string) (*Season, error) {
	season, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("season_service_get_failed: %w", err)
	}
	return season, nil
}

func (service *Service) ListSeasons(context context.Context, titleID string) ([]*Season, error) {
	seasons, err := service.repository.ListByTitle(context, titleID)
	if err != nil {
		return nil, fmt.Errorf("season_service_list_failed: %w", err)
	}
	return seasons, nil
}

func (service *Service) UpdateSeason(context context.Context, id string, input *Season) (*Season, error) {
	current, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("season_service_update_lookup_failed: %w", err)
	}

	input.ID = current.ID
	input.TVShowID = current.TVShowID
	input.CreatedAt = current.CreatedAt

	if err := service.repository.Update(context, input); err != nil {
		return nil, fmt.Errorf("season_service_update_failed: %w", err)
	}
	return input, nil
}

// DeleteSeason removes a season and its episodes, episodes first so a
// failure never orphans them.
func (service *Service) DeleteSeason(context context.Context, id string) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return fmt.Errorf("season_service_delete_lookup_failed: %w", err)
	}

	if err := service.episodes.DeleteBySeason(context, id); err != nil {
		return fmt.Errorf("season_service_delete_episodes_failed: %w", err)
	}

	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("season_service_delete_failed: %w", err)
	}

	service.logger.Info("season_deleted", slog.String("season_id", id))
	return nil
}

// DeleteByTitle bulk-removes a title's seasons. Satisfies the title
// package's dependent-remover contract.
func (service *Service) DeleteByTitle(context context.Context, titleID string) error {
	if err := service.repository.DeleteByTitle(context, titleID); err != nil {
		return fmt.Errorf("season_service_delete_by_title_failed: %w", err)
	}
	return nil
}
