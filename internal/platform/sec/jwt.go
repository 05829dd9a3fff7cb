// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Distinct token failure kinds. The authorization layer reports different
// user-facing reasons for "session expired" vs "please log in again", so
// callers must be able to tell these apart with [errors.Is].
var (
	// ErrTokenExpired means the token was valid once but is past its TTL.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenMalformed means the string is not a structurally valid JWT.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenSignatureInvalid means the signature does not match our secret.
	ErrTokenSignatureInvalid = errors.New("sec: token signature invalid")
)

// AuthClaims is the payload embedded inside an access token.
//
// The token carries ONLY the subject (userName) plus the standard
// issued/expiry claims. Role and account status are deliberately NOT
// embedded: the authorization middleware re-resolves the account on every
// request so a demoted or deactivated user loses access immediately,
// not at token expiry.
type AuthClaims struct {
	jwt.RegisteredClaims
}

// UserName returns the subject the token was issued for.
func (c *AuthClaims) UserName() string { return c.Subject }

// TokenService signs and verifies JWT access tokens using HS256 with a
// single symmetric secret sourced from process configuration.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// DefaultTokenTTL is the access token lifetime when the caller does not
// override it. Expiry is the only invalidation path; there is no refresh
// or revocation mechanism.
const DefaultTokenTTL = 8 * time.Hour

// NewTokenService creates a TokenService with the given shared secret.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: jwt secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed access token for the given subject (userName).
func (service *TokenService) Issue(subject string) (string, error) {
	return service.IssueWithTTL(subject, service.ttl)
}

// IssueWithTTL creates a signed access token with an explicit lifetime.
func (service *TokenService) IssueWithTTL(subject string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// TTL returns the configured default token lifetime.
func (service *TokenService) TTL() time.Duration { return service.ttl }

// Verify checks the signature and validity of a JWT string.
//
// Failures are classified into [ErrTokenExpired], [ErrTokenMalformed] and
// [ErrTokenSignatureInvalid] so the middleware can surface distinct reasons.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: bad claims", ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse errors onto our sentinel kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	default:
		// Unknown validation failures (bad issuer, nbf, ...) are treated as
		// malformed: the client must log in again either way.
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
