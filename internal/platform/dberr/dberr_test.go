// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the database-to-application error mapping.
*/
func TestWrap_Classification(t *testing.T) {
	t.Run("nil_passes_through", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "account_find"))
	})

	t.Run("no_rows_becomes_not_found", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "account_find")
		require.Error(t, err)
		assert.True(t, dberr.IsNotFound(err))
	})

	t.Run("unique_violation_becomes_conflict", func(t *testing.T) {
		pgError := &pgconn.PgError{Code: "23505", ConstraintName: "account_username_key"}
		err := dberr.Wrap(pgError, "account_create")
		require.Error(t, err)
		assert.True(t, dberr.IsConflict(err))

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "account_username_key", ae.Reason)
	})

	t.Run("known_apperror_passes_through", func(t *testing.T) {
		original := apperr.NotFound("Title")
		wrapped := dberr.Wrap(original, "title_find")
		assert.Same(t, original, apperr.As(wrapped))
	})

	t.Run("unknown_becomes_repository_error", func(t *testing.T) {
		err := dberr.Wrap(errors.New("connection reset"), "title_list")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeRepository, ae.Code)
		assert.Equal(t, "title_list", ae.Reason)
	})
}
