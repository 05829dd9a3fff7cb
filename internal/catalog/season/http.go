// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package season

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moviebunkers/api/internal/platform/middleware"
	requestutil "github.com/moviebunkers/api/internal/platform/request"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts under /titles/{titleId}/seasons.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireRole(sec.RoleUser))

		userRoute.Get("/", handler.listSeasons)
		userRoute.Get("/{seasonId}", handler.getSeason)
	})

	router.Group(func(modRoute chi.Router) {
		modRoute.Use(middleware.RequireRole(sec.RoleModerator))

		modRoute.Post("/", handler.createSeason)
		modRoute.Patch("/{seasonId}", handler.updateSeason)
		modRoute.Delete("/{seasonId}", handler.deleteSeason)
	})
}

func (handler *Handler) listSeasons(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	seasons, err := handler.service.ListSeasons(request.Context(), titleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, seasons)
}

func (handler *Handler) getSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID := requestutil.Param(request, "seasonId")

	season, err := handler.service.GetSeason(request.Context(), seasonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, season)
}

func (handler *Handler) createSeason(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	var input Season
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateSeasonPayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateSeason(request.Context(), titleID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID := requestutil.Param(request, "seasonId")

	var input Season
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateSeasonPayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateSeason(request.Context(), seasonID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteSeason(writer http.ResponseWriter, request *http.Request) {
	seasonID := requestutil.Param(request, "seasonId")

	if err := handler.service.DeleteSeason(request.Context(), seasonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func validateSeasonPayload(input *Season) error {
	validator := &validate.Validator{}
	return validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Custom("season_number", input.SeasonNumber < 0, "Must not be negative").
		Custom("episode_count", input.EpisodeCount < 0, "Must not be negative").
		Err()
}
