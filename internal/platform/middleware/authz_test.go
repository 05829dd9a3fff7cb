// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/ctxutil"
	"github.com/moviebunkers/api/internal/platform/middleware"
	"github.com/moviebunkers/api/internal/platform/sec"
)

// stubVerifier maps raw token strings to canned outcomes.
type stubVerifier struct {
	subjects map[string]string
	fail     map[string]error
}

func (v *stubVerifier) Verify(tokenStr string) (*sec.AuthClaims, error) {
	if err, ok := v.fail[tokenStr]; ok {
		return nil, err
	}
	if subject, ok := v.subjects[tokenStr]; ok {
		claims := &sec.AuthClaims{}
		claims.Subject = subject
		return claims, nil
	}
	return nil, sec.ErrTokenMalformed
}

// stubResolver maps token subjects to canned principals or errors.
type stubResolver struct {
	principals map[string]*sec.Principal
	fail       map[string]error
}

func (r *stubResolver) ResolvePrincipal(_ context.Context, userName string) (*sec.Principal, error) {
	if err, ok := r.fail[userName]; ok {
		return nil, err
	}
	if principal, ok := r.principals[userName]; ok {
		return principal, nil
	}
	return nil, apperr.NotFound("User")
}

// authStack wires Authenticate plus an optional role gate in front of a
// probe handler that reports the resolved principal.
func authStack(t *testing.T, gate func(http.Handler) http.Handler) http.Handler {
	t.Helper()

	verifier := &stubVerifier{
		subjects: map[string]string{
			"token-alice": "alice",
			"token-bob":   "bob",
			"token-eve":   "eve",
			"token-ghost": "ghost",
		},
		fail: map[string]error{
			"token-expired": sec.ErrTokenExpired,
			"token-forged":  sec.ErrTokenSignatureInvalid,
		},
	}
	resolver := &stubResolver{
		principals: map[string]*sec.Principal{
			"alice": {UserID: "id-alice", UserName: "alice", Role: sec.RoleAdmin},
			"bob":   {UserID: "id-bob", UserName: "bob", Role: sec.RoleUser},
		},
		fail: map[string]error{
			"eve": apperr.Unauthorized("Your account has been deactivated", "account_inactive"),
		},
	}

	probe := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if principal == nil {
			writer.Write([]byte("anonymous"))
			return
		}
		writer.Write([]byte(principal.UserName))
	})

	var handler http.Handler = probe
	if gate != nil {
		handler = gate(handler)
	}
	handler = middleware.Authenticate(verifier, resolver)(handler)

	return handler
}

// errorReason decodes the error envelope and returns its reason field.
func errorReason(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error struct {
			Reason string `json:"reason"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Error.Reason
}

/*
TestAuthenticate_Anonymous verifies that a request without credentials
proceeds as anonymous rather than being rejected outright.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	handler := authStack(t, nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())
}

/*
TestAuthenticate_BearerToken verifies the full resolve path: header token →
subject → live principal in context.
*/
func TestAuthenticate_BearerToken(t *testing.T) {
	handler := authStack(t, nil)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer token-alice")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "alice", recorder.Body.String())
}

/*
TestAuthenticate_CookieFallback verifies that the auth cookie is honored
when no Authorization header is present.
*/
func TestAuthenticate_CookieFallback(t *testing.T) {
	handler := authStack(t, nil)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: "auth", Value: "token-bob"})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "bob", recorder.Body.String())
}

/*
TestAuthenticate_Failures verifies that every authentication failure
answers 401, distinguished only by the reason string.
*/
func TestAuthenticate_Failures(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		reason     string
	}{
		{"bad_header_shape", "Token abc", "bad_auth_header"},
		{"missing_token_after_bearer", "Bearer", "bad_auth_header"},
		{"expired", "Bearer token-expired", "token_expired"},
		{"forged_signature", "Bearer token-forged", "token_signature_invalid"},
		{"garbage_token", "Bearer token-unknown", "token_malformed"},
		{"subject_vanished", "Bearer token-ghost", "user_not_found"},
		{"deactivated_account", "Bearer token-eve", "account_inactive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := authStack(t, nil)

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Authorization", tt.authHeader)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, tt.reason, errorReason(t, recorder))
		})
	}
}

/*
TestRequireRole verifies the minimum-role gate both ways.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		minimum    sec.UserRole
		wantStatus int
		wantReason string
	}{
		{"anonymous_blocked", "", sec.RoleUser, http.StatusUnauthorized, "token_missing"},
		{"user_below_moderator", "token-bob", sec.RoleModerator, http.StatusUnauthorized, "insufficient_role"},
		{"user_meets_user", "token-bob", sec.RoleUser, http.StatusOK, ""},
		{"admin_meets_moderator", "token-alice", sec.RoleModerator, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := authStack(t, middleware.RequireRole(tt.minimum))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, errorReason(t, recorder))
			}
		})
	}
}

/*
TestRequireAuth verifies the any-authenticated-caller gate.
*/
func TestRequireAuth(t *testing.T) {
	handler := authStack(t, func(next http.Handler) http.Handler {
		return middleware.RequireAuth(next)
	})

	// Anonymous is rejected
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "token_missing", errorReason(t, recorder))

	// Any live account passes, role irrelevant
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer token-bob")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireAnyRole verifies the explicit allow-set gate.
*/
func TestRequireAnyRole(t *testing.T) {
	handler := authStack(t, middleware.RequireAnyRole(sec.RoleAdmin))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer token-bob")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "insufficient_role", errorReason(t, recorder))
}
