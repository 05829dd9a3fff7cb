// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package episode

import (
	"net/http"
	"strconv"

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

// RegisterRoutes mounts under /titles/{titleId}/episodes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireRole(sec.RoleUser))

		userRoute.Get("/", handler.listEpisodes)
		userRoute.Get("/{episodeId}", handler.getEpisode)
	})

	router.Group(func(modRoute chi.Router) {
		modRoute.Use(middleware.RequireRole(sec.RoleModerator))

		modRoute.Post("/", handler.createEpisode)
		modRoute.Patch("/{episodeId}", handler.updateEpisode)
		modRoute.Delete("/{episodeId}", handler.deleteEpisode)
	})
}

func (handler *Handler) listEpisodes(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	// Optional narrowing to one season
	seasonNumber := 0
	if raw := request.URL.Query().Get("season_number"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			seasonNumber = parsed
		}
	}

	episodes, err := handler.service.ListEpisodes(request.Context(), titleID, seasonNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episodes)
}

func (handler *Handler) getEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID := requestutil.Param(request, "episodeId")

	episode, err := handler.service.GetEpisode(request.Context(), episodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, episode)
}

func (handler *Handler) createEpisode(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	var input Episode
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateEpisodePayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateEpisode(request.Context(), titleID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID := requestutil.Param(request, "episodeId")

	var input Episode
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateEpisodePayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateEpisode(request.Context(), episodeID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteEpisode(writer http.ResponseWriter, request *http.Request) {
	episodeID := requestutil.Param(request, "episodeId")

	if err := handler.service.DeleteEpisode(request.Context(), episodeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func validateEpisodePayload(input *Episode) error {
	validator := &validate.Validator{}
	validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 200).
		Required("season_id", input.SeasonID).
		UUID("season_id", input.SeasonID).
		Custom("season_number", input.SeasonNumber < 0, "Must not be negative").
		Custom("episode_number", input.EpisodeNumber < 1, "Must be 1 or greater").
		Custom("runtime", input.Runtime < 0, "Must not be negative")

	return validator.Err()
}
