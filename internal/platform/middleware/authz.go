// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/constants"
	"github.com/moviebunkers/api/internal/platform/ctxutil"
	"github.com/moviebunkers/api/internal/platform/respond"
	"github.com/moviebunkers/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the sec package's
// concrete TokenService, allowing us to inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenStr string) (*sec.AuthClaims, error)
}

// PrincipalResolver resolves a token subject (userName) to a live account.
//
// Every request re-resolves the caller — no caching. A revoked or demoted
// user loses access on their very next request. Implementations must reject
// inactive accounts with an Unauthorized error carrying reason
// "account_inactive".
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userName string) (*sec.Principal, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header
// or the "auth" cookie, then resolves the subject to a live account.
//
// # Flow
//  1. Look for 'Authorization: Bearer <token>'; fall back to the auth cookie.
//  2. If neither is present, the request proceeds as anonymous — role gates
//     downstream decide whether that is acceptable.
//  3. Verify the token. Expired / malformed / bad-signature all answer 401,
//     distinguished only by the reason string.
//  4. Resolve the subject claim to an account; reject unknown or inactive.
//  5. Inject the resolved [*sec.Principal] into the request context.
func Authenticate(verifier TokenVerifier, resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Token Extraction ───────────────────────────────────────────
			tokenStr, err := extractToken(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			if tokenStr == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				respond.Error(writer, request, tokenFailure(err))
				return
			}

			// ── 3. Account Resolution ─────────────────────────────────────────
			principal, err := resolver.ResolvePrincipal(request.Context(), claims.UserName())
			if err != nil {
				respond.Error(writer, request, resolveFailure(err))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose caller does not meet the minimum role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It implies the
// authentication check, so mounting both is unnecessary.
func RequireRole(minimum sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())

			if principal == nil {
				respond.Error(writer, request, apperr.Unauthorized("Please log in to continue", "token_missing"))
				return
			}

			if !principal.Role.AtLeast(minimum) {
				respond.Error(writer, request, apperr.Unauthorized("You do not have permission to perform this action", "insufficient_role"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAnyRole blocks requests whose caller's role is not in the closed
// allowed set. Prefer this over [RequireRole] when a route's policy is an
// explicit list rather than a minimum level.
func RequireAnyRole(allowed ...sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())

			if principal == nil {
				respond.Error(writer, request, apperr.Unauthorized("Please log in to continue", "token_missing"))
				return
			}

			if !sec.RoleAllowed(principal.Role, allowed) {
				respond.Error(writer, request, apperr.Unauthorized("You do not have permission to perform this action", "insufficient_role"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAuth blocks anonymous requests without imposing a role policy.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetPrincipal(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Please log in to continue", "token_missing"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// extractToken pulls the bearer token from the Authorization header or the
// auth cookie. An empty result with nil error means anonymous.
func extractToken(request *http.Request) (string, error) {
	authHeader := request.Header.Get(constants.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", apperr.Unauthorized("Invalid authorization header format", "bad_auth_header")
		}
		return parts[1], nil
	}

	cookie, err := request.Cookie(constants.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}
	return cookie.Value, nil
}

// tokenFailure maps token verification failures to 401s with distinct reasons.
func tokenFailure(err error) error {
	switch {
	case errors.Is(err, sec.ErrTokenExpired):
		return apperr.Unauthorized("Your session has expired, please log in again", "token_expired")
	case errors.Is(err, sec.ErrTokenSignatureInvalid):
		return apperr.Unauthorized("Please log in to continue", "token_signature_invalid")
	default:
		return apperr.Unauthorized("Please log in to continue", "token_malformed")
	}
}

// resolveFailure maps account resolution failures to 401s.
//
// A NOT_FOUND from the resolver means the token subject no longer exists;
// everything else keeps its own classification (e.g. inactive account 401s
// pass through unchanged).
func resolveFailure(err error) error {
	ae := apperr.As(err)
	if ae != nil && ae.Code == apperr.CodeNotFound {
		return apperr.Unauthorized("Please log in to continue", "user_not_found")
	}
	if ae != nil && ae.Code == apperr.CodeUnauthorized {
		return ae
	}
	return err
}
