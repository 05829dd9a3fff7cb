// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/middleware"
	requestutil "github.com/moviebunkers/api/internal/platform/request"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/internal/platform/validate"
	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Registered users and up
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireRole(sec.RoleUser))

		userRoute.Get("/", handler.listTitles)
		userRoute.Get("/{titleId}", handler.getTitle)
	})

	// Moderators and up
	router.Group(func(modRoute chi.Router) {
		modRoute.Use(middleware.RequireRole(sec.RoleModerator))

		modRoute.Post("/", handler.createTitle)
		modRoute.Patch("/{titleId}", handler.updateTitle)
		modRoute.Delete("/{titleId}", handler.deleteTitle)
	})
}

func (handler *Handler) listTitles(writer http.ResponseWriter, request *http.Request) {

	sort, err := query.ParseSort(request.URL.Query().Get("sort_by"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error()))
		return
	}

	filter := FilterFromQuery(request.URL.Query())
	paginationParams := pagination.FromRequest(request)
	principal := requestutil.Principal(request)

	page, err := handler.service.ListTitles(request.Context(), principal, filter, sort, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) getTitle(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	title, err := handler.service.GetTitle(request.Context(), titleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, title)
}

func (handler *Handler) createTitle(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Title
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateTitlePayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateTitle(request.Context(), principal, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateTitle(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	titleID := requestutil.Param(request, "titleId")

	var input Title
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateTitlePayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateTitle(request.Context(), principal, titleID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteTitle(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	if err := handler.service.DeleteTitle(request.Context(), titleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// validateTitlePayload covers the boundary-level shape checks; the
// source/external-id invariants live in the service.
func validateTitlePayload(input *Title) error {
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		MaxLen("title", input.Title, 500).
		Required("title_type", string(input.TitleType)).
		Required("source", string(input.Source))

	if input.PosterURL != "" {
		validator.URL("poster_url", input.PosterURL)
	}
	if input.Year != 0 {
		validator.Range("year", input.Year, 1870, 2100)
	}
	validator.Custom("runtime", input.Runtime < 0, "Must not be negative")

	return validator.Err()
}
