// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package link

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

// RegisterRoutes mounts under /titles/{titleId}/links.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireRole(sec.RoleUser))

		userRoute.Get("/", handler.listLinks)
		userRoute.Get("/{linkId}", handler.getLink)
	})

	router.Group(func(modRoute chi.Router) {
		modRoute.Use(middleware.RequireRole(sec.RoleModerator))

		modRoute.Post("/", handler.createLink)
		modRoute.Patch("/{linkId}", handler.updateLink)
		modRoute.Delete("/{linkId}", handler.deleteLink)
	})
}

func (handler *Handler) listLinks(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	links, err := handler.service.ListLinks(request.Context(), titleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

func (handler *Handler) getLink(writer http.ResponseWriter, request *http.Request) {
	linkID := requestutil.Param(request, "linkId")

	link, err := handler.service.GetLink(request.Context(), linkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, link)
}

func (handler *Handler) createLink(writer http.ResponseWriter, request *http.Request) {
	titleID := requestutil.Param(request, "titleId")

	var input Link
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateLinkPayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateLink(request.Context(), titleID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateLink(writer http.ResponseWriter, request *http.Request) {
	linkID := requestutil.Param(request, "linkId")

	var input Link
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateLinkPayload(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateLink(request.Context(), linkID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteLink(writer http.ResponseWriter, request *http.Request) {
	linkID := requestutil.Param(request, "linkId")

	if err := handler.service.DeleteLink(request.Context(), linkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func validateLinkPayload(input *Link) error {
	validator := &validate.Validator{}
	validator.
		Required("url", input.URL).
		URL("url", input.URL).
		Custom("content_type", !input.ContentType.IsValid(), "Must be video, torrent, subtitle or image").
		MaxLen("title", input.Title, 300).
		MaxLen("remarks", input.Remarks, 1000)

	return validator.Err()
}
