// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moviebunkers/api/pkg/slice"
	"github.com/moviebunkers/api/pkg/uuid"
)

// Service orchestrates link CRUD.
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

func (service *Service) CreateLink(context context.Context, titleID string, input *Link) (*Link, error) {
	input.ID = uuid.New()
	input.ParentID = titleID
	input.Quality = slice.Dedupe(input.Quality)

	if err := service.repository.Create(context, input); err != nil {
		return nil, fmt.Errorf("link_service_create_failed: %w", err)
	}

	service.logger.Info("link_created",
		slog.String("title_id", titleID),
		slog.String("content_type", string(input.ContentType)),
	)

	return input, nil
}

func (service *Service) GetLink(context context.Context, id string) (*Link, error) {
	link, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("link_service_get_failed: %w", err)
	}
	return link, nil
}

func (service *Service) ListLinks(context context.Context, titleID string) ([]*Link, error) {
	links, err := service.repository.ListByTitle(context, titleID)
	if err != nil {
		return nil, fmt.Errorf("link_service_list_failed: %w", err)
	}
	return links, nil
}

func (service *Service) UpdateLink(context context.Context, id string, input *Link) (*Link, error) {
	current, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("link_service_update_lookup_failed: %w", err)
	}

	input.ID = current.ID
	input.ParentID = current.ParentID
	input.CreatedAt = current.CreatedAt
	input.Quality = slice.Dedupe(input.Quality)

	if err := service.repository.Update(context, input); err != nil {
		return nil, fmt.Errorf("link_service_update_failed: %w", err)
	}
	return input, nil
}

func (service *Service) DeleteLink(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return fmt.Errorf("link_service_delete_failed: %w", err)
	}
	return nil
}

// DeleteByTitle bulk-removes a title's links. Satisfies the title package's
// dependent-remover contract.
func (service *Service) DeleteByTitle(context context.Context, titleID string) error {
	if err := service.repository.DeleteByTitle(context, titleID); err != nil {
		return fmt.Errorf("link_service_delete_by_title_failed: %w", err)
	}
	return nil
}
