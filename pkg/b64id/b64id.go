// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package b64id encodes and decodes identifiers carried in URL path segments.

Title ids travel base64url-encoded in paths (e.g. POST
/userdata/add-to-seen/{titleId}) so clients never have to URL-escape them.
*/
package b64id

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode returns the base64url (unpadded) form of an identifier.
func Encode(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// Decode reverses [Encode]. Padded input is accepted too, since some
// clients emit standard base64url with '=' padding.
func Decode(encoded string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return "", fmt.Errorf("b64id: invalid base64url identifier: %w", err)
	}
	return string(decoded), nil
}
