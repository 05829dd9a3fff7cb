// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package episode

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

func (repository *PostgresRepository) Create(context context.Context, episode *Episode) error {
	e := schema.CatalogEpisode

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`,
		e.Table,
		e.ID, e.TVShowID, e.SeasonID, e.SeasonNumber, e.EpisodeNumber,
		e.Name, e.Overview, e.AirDate, e.Runtime, e.StillURL,
		e.CreatedAt, e.UpdatedAt,
		e.CreatedAt, e.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		episode.ID, episode.TVShowID, episode.SeasonID, episode.SeasonNumber,
		episode.EpisodeNumber, episode.Name, episode.Overview, episode.AirDate,
		episode.Runtime, episode.StillURL,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)

	return dberr.Wrap(err, "create_episode")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Episode, error) {
	e := schema.CatalogEpisode
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", e.ID)

	episode := &Episode{}
	err := repository.db.QueryRow(context, query, id).Scan(scanTargets(episode)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_episode_by_id")
	}
	return episode, nil
}

func (repository *PostgresRepository) ListByTitle(context context.Context, titleID string, seasonNumber int) ([]*Episode, error) {
	e := schema.CatalogEpisode

	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", e.TVShowID)
	args := []any{titleID}

	if seasonNumber > 0 {
		query += fmt.Sprintf(" AND %s = $2", e.SeasonNumber)
		args = append(args, seasonNumber)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", e.SeasonNumber, e.EpisodeNumber)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_episodes_by_title")
	}
	defer rows.Close()

	var episodes []*Episode
	for rows.Next() {
		episode := &Episode{}
		if err := rows.Scan(scanTargets(episode)...); err != nil {
			return nil, dberr.Wrap(err, "scan_episode")
		}
		episodes = append(episodes, episode)
	}

	return episodes, nil
}

func (repository *PostgresRepository) Update(context context.Context, episode *Episode) error {
	e := schema.CatalogEpisode

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		e.Table,
		e.SeasonNumber, e.EpisodeNumber, e.Name, e.Overview, e.AirDate,
		e.Runtime, e.StillURL,
		e.UpdatedAt,
		e.ID,
		e.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		episode.ID, episode.SeasonNumber, episode.EpisodeNumber, episode.Name,
		episode.Overview, episode.AirDate, episode.Runtime, episode.StillURL,
	).Scan(&episode.UpdatedAt)

	return dberr.Wrap(err, "update_episode")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	e := schema.CatalogEpisode
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, e.Table, e.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_episode")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_episode")
	}
	return nil
}

func (repository *PostgresRepository) DeleteByTitle(context context.Context, titleID string) error {
	e := schema.CatalogEpisode
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, e.Table, e.TVShowID)

	_, err := repository.db.Exec(context, query, titleID)
	return dberr.Wrap(err, "delete_episodes_by_title")
}

func (repository *PostgresRepository) DeleteBySeason(context context.Context, seasonID string) error {
	e := schema.CatalogEpisode
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, e.Table, e.SeasonID)

	_, err := repository.db.Exec(context, query, seasonID)
	return dberr.Wrap(err, "delete_episodes_by_season")
}

func (repository *PostgresRepository) selectQuery() string {
	e := schema.CatalogEpisode
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		e.ID, e.TVShowID, e.SeasonID, e.SeasonNumber, e.EpisodeNumber,
		e.Name, e.Overview, e.AirDate, e.Runtime, e.StillURL,
		e.CreatedAt, e.UpdatedAt,
		e.Table,
	)
}

func scanTargets(episode *Episode) []any {
	return []any{
		&episode.ID, &episode.TVShowID, &episode.SeasonID, &episode.SeasonNumber,
		&episode.EpisodeNumber, &episode.Name, &episode.Overview, &episode.AirDate,
		&episode.Runtime, &episode.StillURL, &episode.CreatedAt, &episode.UpdatedAt,
	}
}
