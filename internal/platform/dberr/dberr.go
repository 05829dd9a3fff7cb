// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Propagation Policy
//
// A known [apperr.AppError] passes through unchanged so its HTTP mapping
// survives the layers. Unknown errors are wrapped exactly once, carrying the
// originating action name as a breadcrumb for diagnostics.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moviebunkers/api/internal/platform/apperr"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint failures.
const uniqueViolation = "23505"

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Classification:
//   - pgx.ErrNoRows        → NOT_FOUND
//   - SQLSTATE 23505       → CONFLICT (constraint name surfaced in the reason)
//   - known AppError       → passed through unchanged
//   - anything else        → REPOSITORY_ERROR wrapping the cause
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if existing := apperr.As(err); existing != nil {
		return existing
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource")
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == uniqueViolation {
		return apperr.Conflict("Duplicate value violates a uniqueness constraint").
			WithReason(pgError.ConstraintName)
	}

	return apperr.Repository(err, action)
}

// IsNotFound reports whether the error classifies as NOT_FOUND.
func IsNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == apperr.CodeNotFound
}

// IsConflict reports whether the error classifies as CONFLICT.
func IsConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == apperr.CodeConflict
}
