// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moviebunkers/api/internal/platform/middleware"
	requestutil "github.com/moviebunkers/api/internal/platform/request"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/internal/platform/validate"
	"github.com/moviebunkers/api/pkg/pagination"
	"github.com/moviebunkers/api/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createUser)
		adminRoute.Get("/", handler.listUsers)
		adminRoute.Get("/{userName}", handler.getUser)
		adminRoute.Patch("/{userName}", handler.updateUser)
	})
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input CreateUserInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	err := validator.
		Required("user_name", input.UserName).
		UserName("user_name", input.UserName).
		MaxLen("user_name", input.UserName, 32).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		MinLen("password", input.Password, 8).
		MaxLen("password", input.Password, 72).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.CreateUser(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, user.Public())
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	users, total, err := handler.service.ListUsers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"page":          paginationParams.Page,
		"total_pages":   paginationParams.TotalPages(total),
		"total_results": total,
		"list":          slice.Map(users, func(u *User) PublicUser { return u.Public() }),
	})
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userName := requestutil.Param(request, "userName")

	user, err := handler.service.GetUser(request.Context(), userName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Public())
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	userName := requestutil.Param(request, "userName")

	var input UpdateUserInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), userName, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Public())
}
