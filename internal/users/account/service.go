// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/dberr"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/pkg/uuid"
)

// emailCaser performs Unicode case folding for case-insensitive email
// identity. Folding, unlike ToLower, is stable across locales.
var emailCaser = cases.Fold()

// NormalizeEmail returns the canonical (trimmed, case-folded) form of an
// email address. All storage and lookups go through this form.
func NormalizeEmail(email string) string {
	return emailCaser.String(strings.TrimSpace(email))
}

// # Service Layer

// Service orchestrates account lifecycle and identity resolution.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// CreateUserInput carries the fields accepted when registering an account.
type CreateUserInput struct {
	UserName string       `json:"user_name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
}

/*
CreateUser registers a new account.

Description: Hashes the password, folds the email, and inserts the row. A
missing role defaults to User. Duplicate userName or email surfaces as a
CONFLICT naming the colliding field.

Parameters:
  - context: context.Context
  - input: CreateUserInput

Returns:
  - *User: The created account
  - error: Conflict, hashing, or storage failures
*/
func (service *Service) CreateUser(context context.Context, input CreateUserInput) (*User, error) {

	role := input.Role
	if role == "" {
		role = sec.RoleUser
	}
	if !role.IsValid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "role",
			Message: "Unknown role",
		})
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New(),
		UserName:     strings.TrimSpace(input.UserName),
		Email:        NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         role,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repository.Create(context, user); err != nil {
		return nil, classifyConflict(err)
	}

	service.logger.Info("user_created",
		slog.String("user_name", user.UserName),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

/*
GetUser retrieves an account by userName.

Returns:
  - *User: The hydrated account
  - error: Not found or storage failures
*/
func (service *Service) GetUser(context context.Context, userName string) (*User, error) {
	user, err := service.repository.FindByUserName(context, userName)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}
	return user, nil
}

/*
FindByIdentifier resolves a login identifier (userName or email) to an
account. An identifier containing '@' is treated as an email.

Returns:
  - *User: The hydrated account
  - error: Not found or storage failures
*/
func (service *Service) FindByIdentifier(context context.Context, identifier string) (*User, error) {
	if strings.Contains(identifier, "@") {
		return service.repository.FindByEmail(context, NormalizeEmail(identifier))
	}
	return service.repository.FindByUserName(context, identifier)
}

/*
ListUsers returns one page of accounts, newest first.

Returns:
  - []*User: The page of accounts
  - int: Total account count
  - error: Storage failures
*/
func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	users, total, err := service.repository.List(context, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}

// UpdateUserInput carries the admin-mutable subset of account fields.
type UpdateUserInput struct {
	Role   *sec.UserRole `json:"role"`
	Status *Status       `json:"status"`
}

/*
UpdateUser applies role and status changes to an account.

Description: Fetches the current state, overlays provided fields, and
persists the result. A status flip to Inactive locks the account out on its
very next request, since authorization re-resolves the caller every time.

Parameters:
  - context: context.Context
  - userName: string
  - input: UpdateUserInput

Returns:
  - *User: The updated account
  - error: Validation, not found, or storage failures
*/
func (service *Service) UpdateUser(context context.Context, userName string, input UpdateUserInput) (*User, error) {

	user, err := service.repository.FindByUserName(context, userName)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   "role",
				Message: "Unknown role",
			})
		}
		user.Role = *input.Role
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   "status",
				Message: "Must be Active or Inactive",
			})
		}
		user.Status = *input.Status
	}

	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_updated",
		slog.String("user_name", user.UserName),
		slog.String("role", string(user.Role)),
		slog.String("status", string(user.Status)),
	)

	return user, nil
}

/*
ChangePassword replaces an account's password hash.

Parameters:
  - context: context.Context
  - userID: string
  - newPassword: string (plaintext, already validated at the boundary)

Returns:
  - error: Hashing, not found, or storage failures
*/
func (service *Service) ChangePassword(context context.Context, userID, newPassword string) error {

	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return fmt.Errorf("account_service_password_lookup_failed: %w", err)
	}

	hash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user.PasswordHash = hash
	if err := service.repository.Update(context, user); err != nil {
		return fmt.Errorf("account_service_password_update_failed: %w", err)
	}

	service.logger.Info("user_password_changed", slog.String("user_name", user.UserName))

	return nil
}

// # Identity Resolution

/*
ResolvePrincipal resolves a token subject to a live request identity.

Description: Implements the authorization middleware's resolver contract.
Every request goes through here — no caching — so a demoted or deactivated
account loses access immediately.

Returns:
  - *sec.Principal: The caller identity for the request context
  - error: apperr.NotFound (unknown subject), apperr.Unauthorized with
    reason "account_inactive", or storage failures
*/
func (service *Service) ResolvePrincipal(context context.Context, userName string) (*sec.Principal, error) {
	user, err := service.repository.FindByUserName(context, userName)
	if err != nil {
		return nil, err
	}

	if user.Status != StatusActive {
		return nil, apperr.Unauthorized("Your account has been deactivated", "account_inactive")
	}

	return user.Principal(), nil
}

// classifyConflict rewrites a unique-violation CONFLICT into one naming the
// colliding identity field. Other errors pass through unchanged.
func classifyConflict(err error) error {
	if !dberr.IsConflict(err) {
		return fmt.Errorf("account_service_create_failed: %w", err)
	}

	ae := apperr.As(err)
	switch {
	case strings.Contains(ae.Reason, "username"):
		return apperr.Conflict("An account with this userName already exists")
	case strings.Contains(ae.Reason, "email"):
		return apperr.Conflict("An account with this email already exists")
	default:
		return ae
	}
}
