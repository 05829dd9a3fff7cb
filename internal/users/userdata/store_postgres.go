// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package userdata

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviebunkers/api/internal/platform/database/schema"
	"github.com/moviebunkers/api/internal/platform/dberr"
	"github.com/moviebunkers/api/pkg/uuid"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetOrInit(context context.Context, userID string) (*UserData, error) {

	// Atomic insert-if-absent keyed on the unique userid column. Two
	// concurrent first touches race on the index, not on a read check, so
	// the loser simply no-ops and both read the same row.
	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, '{}', '{}', '{}', '{}', NOW(), NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.UserData.Table,
		schema.UserData.ID, schema.UserData.UserID,
		schema.UserData.SeenTitles, schema.UserData.UnseenTitles,
		schema.UserData.StarredTitles, schema.UserData.FavouriteTitles,
		schema.UserData.CreatedAt, schema.UserData.UpdatedAt,
		schema.UserData.UserID,
	)

	if _, err := repository.db.Exec(context, insertQuery, uuid.New(), userID); err != nil {
		return nil, dberr.Wrap(err, "init_userdata")
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserData.ID, schema.UserData.UserID,
		schema.UserData.SeenTitles, schema.UserData.UnseenTitles,
		schema.UserData.StarredTitles, schema.UserData.FavouriteTitles,
		schema.UserData.CreatedAt, schema.UserData.UpdatedAt,
		schema.UserData.Table,
		schema.UserData.UserID,
	)

	data := &UserData{}
	err := repository.db.QueryRow(context, selectQuery, userID).Scan(
		&data.ID, &data.UserID,
		&data.SeenTitles, &data.UnseenTitles,
		&data.StarredTitles, &data.FavouriteTitles,
		&data.CreatedAt, &data.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_userdata")
	}

	return data, nil
}

func (repository *PostgresRepository) AddToSeen(context context.Context, userID, titleID string) error {
	return repository.addExclusive(context, userID, titleID,
		schema.UserData.SeenTitles, schema.UserData.UnseenTitles, "add_to_seen")
}

func (repository *PostgresRepository) AddToUnseen(context context.Context, userID, titleID string) error {
	return repository.addExclusive(context, userID, titleID,
		schema.UserData.UnseenTitles, schema.UserData.SeenTitles, "add_to_unseen")
}

// addExclusive appends titleID to targetColumn and evicts it from
// oppositeColumn in ONE statement, lazily creating the row when the user has
// never touched watch-state before. Atomicity is what keeps the seen/unseen
// exclusivity invariant under concurrent calls.
func (repository *PostgresRepository) addExclusive(context context.Context, userID, titleID, targetColumn, oppositeColumn, action string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, ARRAY[$3::uuid], NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = CASE
				WHEN $3::uuid = ANY(%s.%s) THEN %s.%s
				ELSE array_append(%s.%s, $3::uuid)
			END,
			%s = array_remove(%s.%s, $3::uuid),
			%s = NOW()
	`,
		schema.UserData.Table,
		schema.UserData.ID, schema.UserData.UserID, targetColumn, schema.UserData.CreatedAt,
		schema.UserData.UserID,
		targetColumn,
		schema.UserData.Table, targetColumn, schema.UserData.Table, targetColumn,
		schema.UserData.Table, targetColumn,
		oppositeColumn, schema.UserData.Table, oppositeColumn,
		schema.UserData.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query, uuid.New(), userID, titleID)
	return dberr.Wrap(err, action)
}

func (repository *PostgresRepository) AddToSet(context context.Context, userID, titleID string, set Set) error {
	column, err := setColumn(set)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, ARRAY[$3::uuid], NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = CASE
				WHEN $3::uuid = ANY(%s.%s) THEN %s.%s
				ELSE array_append(%s.%s, $3::uuid)
			END,
			%s = NOW()
	`,
		schema.UserData.Table,
		schema.UserData.ID, schema.UserData.UserID, column, schema.UserData.CreatedAt,
		schema.UserData.UserID,
		column,
		schema.UserData.Table, column, schema.UserData.Table, column,
		schema.UserData.Table, column,
		schema.UserData.UpdatedAt,
	)

	_, err = repository.db.Exec(context, query, uuid.New(), userID, titleID)
	return dberr.Wrap(err, "add_to_"+string(set))
}

func (repository *PostgresRepository) RemoveFromSet(context context.Context, userID, titleID string, set Set) error {
	column, err := setColumn(set)
	if err != nil {
		return err
	}

	// Removal still lazily creates the row: the post-condition (title
	// absent from the set) is satisfied by an empty fresh record too.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = array_remove(%s.%s, $3::uuid),
			%s = NOW()
	`,
		schema.UserData.Table,
		schema.UserData.ID, schema.UserData.UserID, schema.UserData.CreatedAt,
		schema.UserData.UserID,
		column, schema.UserData.Table, column,
		schema.UserData.UpdatedAt,
	)

	_, err = repository.db.Exec(context, query, uuid.New(), userID, titleID)
	return dberr.Wrap(err, "remove_from_"+string(set))
}

// setColumn maps the public set name onto its uuid[] column. The seen and
// unseen sets are deliberately absent: they only mutate through the
// exclusivity-preserving paths.
func setColumn(set Set) (string, error) {
	switch set {
	case SetStarred:
		return schema.UserData.StarredTitles, nil
	case SetFavourite:
		return schema.UserData.FavouriteTitles, nil
	default:
		return "", fmt.Errorf("userdata: unknown set %q", set)
	}
}
