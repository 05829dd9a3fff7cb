// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that an issued token carries its subject
back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "moviebunkers", time.Hour)
	require.NoError(t, err)

	token, err := service.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserName())
	assert.Equal(t, "moviebunkers", claims.Issuer)
}

/*
TestTokenService_Expired verifies that a past-TTL token fails with the
expired sentinel, not a generic error.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "moviebunkers", time.Hour)
	require.NoError(t, err)

	token, err := service.IssueWithTTL("alice", -time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_WrongSecret verifies that a token signed with a different
secret fails with the signature sentinel.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-one", "moviebunkers", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-two", "moviebunkers", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, sec.ErrTokenSignatureInvalid)
}

/*
TestTokenService_Malformed verifies that garbage input is classified as
malformed.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "moviebunkers", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two_segments", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies that the service refuses to start
without a signing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "moviebunkers", time.Hour)
	assert.Error(t, err)
}

/*
TestNewTokenService_DefaultTTL verifies the zero-TTL fallback.
*/
func TestNewTokenService_DefaultTTL(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "moviebunkers", 0)
	require.NoError(t, err)
	assert.Equal(t, sec.DefaultTokenTTL, service.TTL())
}
