// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviebunkers/api/internal/platform/config"
	"github.com/moviebunkers/api/internal/platform/constants"
	"github.com/moviebunkers/api/internal/platform/middleware"
	requestutil "github.com/moviebunkers/api/internal/platform/request"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/internal/platform/validate"
)

type Handler struct {
	service   *Service
	cookieTTL time.Duration
	secure    bool
}

func NewHandler(service *Service, cfg *config.Config) *Handler {
	return &Handler{
		service:   service,
		cookieTTL: cfg.JWTTTL,
		secure:    cfg.HTTPSEnabled,
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Post("/login", handler.login)
	router.Get("/logout", handler.logout)
	router.Post("/forgot-password", handler.forgotPassword)
	router.Post("/reset-password", handler.resetPassword)

	// Logged-in only
	router.With(middleware.RequireAuth).Get("/me", handler.whoAmI)
}

// loginRequest is the login payload. UserName doubles as the identifier
// field and accepts an email too.
type loginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	err := validator.
		Required("user_name", input.UserName).
		Required("password", input.Password).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), input.UserName, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setAuthCookie(writer, result.Token)

	respond.OK(writer, map[string]any{
		"token": result.Token,
		"user":  result.User.Public(),
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.clearAuthCookie(writer)
	respond.OK(writer, map[string]string{"message": "Logged out"})
}

func (handler *Handler) whoAmI(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"user_name": principal.UserName,
		"email":     principal.Email,
		"role":      principal.Role,
	})
}

type forgotPasswordRequest struct {
	UserName string `json:"user_name"`
}

func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {
	var input forgotPasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required("user_name", input.UserName).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ForgotPassword(request.Context(), input.UserName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Identical answer whether or not the identifier matched an account.
	respond.OK(writer, map[string]string{
		"message": "If that account exists, a reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	err := validator.
		Required("token", input.Token).
		Required("new_password", input.NewPassword).
		MinLen("new_password", input.NewPassword, 8).
		MaxLen("new_password", input.NewPassword, 72).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ResetPassword(request.Context(), input.Token, input.NewPassword); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Password updated, please log in"})
}

// setAuthCookie mirrors the token lifetime onto the cookie so the browser
// drops it when the token would stop verifying anyway.
func (handler *Handler) setAuthCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     constants.AuthCookiePath,
		MaxAge:   int(handler.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearAuthCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     constants.AuthCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
