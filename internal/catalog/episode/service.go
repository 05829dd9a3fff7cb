// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package episode

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moviebunkers/api/pkg/uuid"
)

// Service orchestrates episode CRUD.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

func (service *Service) CreateEpisode(context context.Context, titleID string, input *Episode) (*Episode, error) {
	input.ID = uuid.New()
	input.TVShowID = titleID

	if err := service.repository.Create(context, input); err != nil {
		return nil, fmt.Errorf("episode_service_create_failed: %w", err)
	}

	service.logger.Info("episode_created",
		slog.String("title_id", titleID),
		slog.Int("season_number", input.SeasonNumber),
		slog.Int("episode_number", input.EpisodeNumber),
	)

	return input, nil
}

func (service *Service) GetEpisode(context context.Context, id string) (*Episode, error) {
	episode, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("episode_service_get_failed: %w", err)
	}
	return episode, nil
}

func (service *Service) ListEpisodes(context context.Context, titleID string, seasonNumber int) ([]*Episode, error) {
	episodes, err := service.repository.ListByTitle(context, titleID, seasonNumber)
	if err != nil {
		return nil, fmt.Errorf("episode_service_list_failed: %w", err)
	}
	return episodes, nil
}

func (service *Service) UpdateEpisode(context context.Context, id string, input *Episode) (*Episode, error) {
	current, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("episode_service_update_lookup_failed: %w", err)
	}

	input.ID = current.ID
	input.TVShowID = current.TVShowID
	input.SeasonID = current.SeasonID
	input.CreatedAt = current.CreatedAt

	if err := service.repository.Update(context, input); err != nil {
		return nil, fmt.Errorf("episode_service_update_failed: %w", err)
	}
	return input, nil
}

func (service *Service) DeleteEpisode(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("episode_service_delete_failed: %w", err)
	}
	return nil
}

// DeleteByTitle bulk-removes a title's episodes. Satisfies the title
// package's dependent-remover contract.
func (service *Service) DeleteByTitle(context context.Context, titleID string) error {
	if err := service.repository.DeleteByTitle(context, titleID); err != nil {
		return fmt.Errorf("episode_service_delete_by_title_failed: %w", err)
	}
	return nil
}

// DeleteBySeason bulk-removes one season's episodes. Satisfies the season
// package's episode-remover contract.
func (service *Service) DeleteBySeason(context context.Context, seasonID string) error {
	if err := service.repository.DeleteBySeason(context, seasonID); err != nil {
		return fmt.Errorf("episode_service_delete_by_season_failed: %w", err)
	}
	return nil
}
