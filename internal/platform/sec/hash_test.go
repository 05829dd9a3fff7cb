// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies that a hashed password matches itself
and nothing else.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash("correct horse battery staple", "not-a-bcrypt-hash"))
}

/*
TestGenerateSecureToken verifies token shape and per-call uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	// base64url, no padding: URL-safe by construction
	assert.NotContains(t, first, "=")
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
}

/*
TestHashToken verifies the digest is deterministic and hex-encoded.
*/
func TestHashToken(t *testing.T) {
	digest := sec.HashToken("some-reset-token")

	assert.Len(t, digest, 64)
	assert.Equal(t, digest, sec.HashToken("some-reset-token"))
	assert.NotEqual(t, digest, sec.HashToken("other-reset-token"))
}
