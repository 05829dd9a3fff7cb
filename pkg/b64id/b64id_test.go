// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package b64id_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/pkg/b64id"
)

/*
TestEncodeDecode verifies the path-segment identifier round trip.
*/
func TestEncodeDecode(t *testing.T) {
	id := "0190b1f0-5f6a-7c4e-9d3b-0a1b2c3d4e5f"

	encoded := b64id.Encode(id)
	assert.NotContains(t, encoded, "=")
	assert.NotContains(t, encoded, "/")

	decoded, err := b64id.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

/*
TestDecode_PaddedInput verifies that standard-base64url padding from
lenient clients is tolerated.
*/
func TestDecode_PaddedInput(t *testing.T) {
	// "ab" encodes to "YWI" raw or "YWI=" padded.
	decoded, err := b64id.Decode("YWI=")
	require.NoError(t, err)
	assert.Equal(t, "ab", decoded)
}

/*
TestDecode_Invalid verifies rejection of non-base64url input.
*/
func TestDecode_Invalid(t *testing.T) {
	_, err := b64id.Decode("not base64!!")
	assert.Error(t, err)
}
