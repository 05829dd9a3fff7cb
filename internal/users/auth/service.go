// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/dberr"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/internal/users/account"
)

// # Service Layer

// Service orchestrates login, logout, and the password reset flow.
type Service struct {
	accounts    *account.Service
	tokens      *sec.TokenService
	resetTokens ResetTokenRepository
	mailer      Mailer
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its collaborators.
func NewService(
	accounts *account.Service,
	tokens *sec.TokenService,
	resetTokens ResetTokenRepository,
	mailer Mailer,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts:    accounts,
		tokens:      tokens,
		resetTokens: resetTokens,
		mailer:      mailer,
		logger:      logger,
	}
}

// LoginResult is what a successful login hands back to the handler.
type LoginResult struct {
	Token string
	User  *account.User
}

/*
Login verifies credentials and issues an access token.

Description: The identifier may be a userName or an email. Unknown account
and wrong password are indistinguishable to the caller (same generic 401);
a deactivated account is reported distinctly since it is not a guessing
vector once the password matched.

Parameters:
  - context: context.Context
  - identifier: string (userName or email)
  - password: string

Returns:
  - *LoginResult: Token plus the authenticated account
  - error: Unauthorized with reason "bad_credentials"/"account_inactive",
    or storage failures
*/
func (service *Service) Login(context context.Context, identifier, password string) (*LoginResult, error) {

	// 1. Resolve the account. A miss costs the same 401 as a bad password.
	user, err := service.accounts.FindByIdentifier(context, identifier)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid userName or password", "bad_credentials")
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// 2. Verify the password against the stored bcrypt digest.
	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("user_name", user.UserName))
		return nil, apperr.Unauthorized("Invalid userName or password", "bad_credentials")
	}

	// 3. Deactivated accounts cannot log in no matter the credentials.
	if user.Status != account.StatusActive {
		return nil, apperr.Unauthorized("Your account has been deactivated", "account_inactive")
	}

	// 4. Issue the access token for the userName subject.
	token, err := service.tokens.Issue(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	service.logger.Info("login_succeeded", slog.String("user_name", user.UserName))

	return &LoginResult{Token: token, User: user}, nil
}

/*
ForgotPassword starts the reset flow for an account identifier.

Description: Always reports success to the caller — whether or not the
identifier matched an account — so the endpoint cannot be used to probe for
registered emails. When the account exists, a one-shot token is stored
hashed in Redis with a TTL and mailed out.

Parameters:
  - context: context.Context
  - identifier: string (userName or email)

Returns:
  - error: Storage or token generation failures only, never "no such user"
*/
func (service *Service) ForgotPassword(context context.Context, identifier string) error {

	user, err := service.accounts.FindByIdentifier(context, identifier)
	if err != nil {
		if dberr.IsNotFound(err) {
			// Do not leak which identifiers exist.
			service.logger.Debug("password_reset_unknown_identifier")
			return nil
		}
		return fmt.Errorf("auth_service_forgot_lookup_failed: %w", err)
	}

	token, err := sec.GenerateSecureToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("auth_service_reset_token_failed: %w", err)
	}

	if err := service.resetTokens.Save(context, sec.HashToken(token), user.ID, ResetTokenTTL); err != nil {
		return fmt.Errorf("auth_service_reset_save_failed: %w", err)
	}

	if err := service.mailer.SendPasswordReset(context, user.Email, user.UserName, token); err != nil {
		return fmt.Errorf("auth_service_reset_mail_failed: %w", err)
	}

	service.logger.Info("password_reset_requested", slog.String("user_name", user.UserName))

	return nil
}

/*
ResetPassword redeems a one-shot reset token and sets a new password.

Parameters:
  - context: context.Context
  - token: string (plaintext token from the email)
  - newPassword: string

Returns:
  - error: Unauthorized with reason "reset_token_invalid" for unknown or
    expired tokens, hashing or storage failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {

	userID, err := service.resetTokens.Consume(context, sec.HashToken(token))
	if err != nil {
		if dberr.IsNotFound(err) {
			return apperr.Unauthorized("This reset link is invalid or has expired", "reset_token_invalid")
		}
		return fmt.Errorf("auth_service_reset_consume_failed: %w", err)
	}

	if err := service.accounts.ChangePassword(context, userID, newPassword); err != nil {
		return fmt.Errorf("auth_service_reset_change_failed: %w", err)
	}

	service.logger.Info("password_reset_completed", slog.String("user_id", userID))

	return nil
}
