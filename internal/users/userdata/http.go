// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package userdata

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/middleware"
	requestutil "github.com/moviebunkers/api/internal/platform/request"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/pkg/b64id"
)

// mutatorFunc is one watch-state operation on the service.
type mutatorFunc func(ctx context.Context, userID, titleID string) (bool, error)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the watch-state endpoints. Every route requires a
// logged-in caller; no role floor beyond that — even Guests manage their
// own watch-state.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getUserData)

	// titleId travels base64url-encoded in the path
	router.Post("/add-to-seen/{titleId}", handler.mutate(handler.service.MarkSeen))
	router.Post("/add-to-unseen/{titleId}", handler.mutate(handler.service.MarkUnseen))
	router.Post("/star/{titleId}", handler.mutate(handler.service.Star))
	router.Post("/unstar/{titleId}", handler.mutate(handler.service.Unstar))
	router.Post("/favourite/{titleId}", handler.mutate(handler.service.Favourite))
	router.Post("/unfavourite/{titleId}", handler.mutate(handler.service.Unfavourite))
}

func (handler *Handler) getUserData(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	data, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, data)
}

// mutate adapts one watch-state operation into an HTTP handler: resolve the
// caller, decode the base64url title id, run the operation, report the
// boolean outcome.
func (handler *Handler) mutate(operation mutatorFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		userID, err := requestutil.RequiredUserID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		titleID, err := b64id.Decode(requestutil.Param(request, "titleId"))
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("Invalid title id encoding"))
			return
		}

		ok, err := operation(request.Context(), userID, titleID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, map[string]bool{"success": ok})
	}
}
