// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package account manages user accounts: registration, administration, and the
per-request identity resolution the authorization middleware depends on.

# Architecture

  - Entities: User (identity + credentials), Status (Active/Inactive gate).
  - Identity: userName is unique as-is; email is unique case-insensitively
    (Unicode case folding, not ASCII lowering).
  - Security: the password hash never leaves this package — public views go
    through [User.Public].
*/
package account

import (
	"time"

	"github.com/moviebunkers/api/internal/platform/sec"
)

// # Domain Entities

// Status gates whether an account may authenticate at all.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsValid reports whether the status is one of the closed enumeration values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is a registered account.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`

	// Email is stored case-folded; the original casing is not preserved.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest. Never serialized.
	PasswordHash string `json:"-"`

	Role      sec.UserRole `json:"role"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PublicUser is the safety-mapped view of an account for API responses and
// for embedding as title owner/modifier identity.
type PublicUser struct {
	UserName  string       `json:"user_name"`
	Email     string       `json:"email"`
	Role      sec.UserRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// Public maps the account to its transport-safe projection.
func (u *User) Public() PublicUser {
	return PublicUser{
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Principal maps the account to the request identity attached by middleware.
func (u *User) Principal() *sec.Principal {
	return &sec.Principal{
		UserID:   u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
