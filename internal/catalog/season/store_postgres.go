// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package season

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviebunkers/api/internal/platform/database/schema"
	"github.com/moviebunkers/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, season *Season) error {
	s := schema.CatalogSeason

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table,
		s.ID, s.TVShowID, s.SeasonNumber, s.Name, s.Overview, s.AirDate,
		s.EpisodeCount, s.PosterURL, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		season.ID, season.TVShowID, season.SeasonNumber, season.Name,
		season.Overview, season.AirDate, season.EpisodeCount, season.PosterURL,
	).Scan(&season.CreatedAt, &season.UpdatedAt)

	return dberr.Wrap(err, "create_season")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Season, error) {
	s := schema.CatalogSeason
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", s.ID)

	season := &Season{}
	err := repository.db.QueryRow(context, query, id).Scan(scanTargets(season)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_season_by_id")
	}
	return season, nil
}

func (repository *PostgresRepository) ListByTitle(context context.Context, titleID string) ([]*Season, error) {
	s := schema.CatalogSeason
	query := repository.selectQuery() +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC", s.TVShowID, s.SeasonNumber)

	rows, err := repository.db.Query(context, query, titleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_seasons_by_title")
	}
	defer rows.Close()

	var seasons []*Season
	for rows.Next() {
		season := &Season{}
		if err := rows.Scan(scanTargets(season)...); err != nil {
			return nil, dberr.Wrap(err, "scan_season")
		}
		seasons = append(seasons, season)
	}

	return seasons, nil
}

func (repository *PostgresRepository) Update(context context.Context, season *Season) error {
	s := schema.CatalogSeason

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table,
		s.SeasonNumber, s.Name, s.Overview, s.AirDate, s.EpisodeCount, s.PosterURL,
		s.UpdatedAt,
		s.ID,
		s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		season.ID, season.SeasonNumber, season.Name, season.Overview,
		season.AirDate, season.EpisodeCount, season.PosterURL,
	).Scan(&season.UpdatedAt)

	return dberr.Wrap(err, "update_season")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	s := schema.CatalogSeason
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_season")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_season")
	}
	return nil
}

func (repository *PostgresRepository) DeleteByTitle(context context.Context, titleID string) error {
	s := schema.CatalogSeason
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.TVShowID)

	// Zero rows is fine: a movie title has no seasons.
	_, err := repository.db.Exec(context, query, titleID)
	return dberr.Wrap(err, "delete_seasons_by_title")
}

func (repository *PostgresRepository) selectQuery() string {
	s := schema.CatalogSeason
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		s.ID, s.TVShowID, s.SeasonNumber, s.Name, s.Overview, s.AirDate,
		s.EpisodeCount, s.PosterURL, s.CreatedAt, s.UpdatedAt,
		s.Table,
	)
}

func scanTargets(season *Season) []any {
	return []any{
		&season.ID, &season.TVShowID, &season.SeasonNumber, &season.Name,
		&season.Overview, &season.AirDate, &season.EpisodeCount, &season.PosterURL,
		&season.CreatedAt, &season.UpdatedAt,
	}
}
