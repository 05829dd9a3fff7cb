// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package title

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviebunkers/api/internal/platform/database/schema"
	"github.com/moviebunkers/api/internal/platform/dberr"
	"github.com/moviebunkers/api/internal/platform/sec"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Aggregation

func (repository *PostgresRepository) Aggregate(context context.Context, pipeline *Pipeline) ([]*TitleSummary, int, error) {
	sql, args := pipeline.Build()

	rows, err := repository.db.Query(context, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "aggregate_titles")
	}
	defer rows.Close()

	var summaries []*TitleSummary
	var total int

	for rows.Next() {
		summary := &TitleSummary{}

		// Nullable because the LEFT JOIN misses when the owning account
		// was deleted (soft reference, not enforced by the store).
		var ownerName, ownerEmail, ownerRole *string
		var ownerCreated *time.Time
		var modifierName, modifierEmail, modifierRole *string
		var modifierCreated *time.Time

		targets := append(titleScanTargets(&summary.Title),
			&total,
			&summary.SeenByUser, &summary.UnseenByUser,
			&summary.StarredByUser, &summary.FavouriteByUser,
			&ownerName, &ownerEmail, &ownerRole, &ownerCreated,
			&modifierName, &modifierEmail, &modifierRole, &modifierCreated,
		)

		if err := rows.Scan(targets...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_title_summary")
		}

		summary.AddedByUser = ownerRef(ownerName, ownerEmail, ownerRole, ownerCreated)
		summary.LastModifiedByUser = ownerRef(modifierName, modifierEmail, modifierRole, modifierCreated)

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "aggregate_titles")
	}

	return summaries, total, nil
}

// # CRUD

func (repository *PostgresRepository) Create(context context.Context, title *Title) error {
	t := schema.CatalogTitle

	columns := t.Columns()
	markers := make([]string, len(columns))
	for i := range columns[:len(columns)-2] {
		markers[i] = fmt.Sprintf("$%d", i+1)
	}
	// createdat / updatedat are the trailing two columns
	markers[len(columns)-2] = "NOW()"
	markers[len(columns)-1] = "NOW()"

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s, %s
	`,
		t.Table, strings.Join(columns, ", "), strings.Join(markers, ", "),
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		title.ID, title.TitleType, title.Source, title.TmdbID, title.ImdbID,
		title.Title, title.OriginalTitle, title.Tagline, title.Overview,
		title.Genres, title.Languages, title.CastMembers, title.Directors,
		title.ReleaseDate, title.Year, title.Runtime, title.PosterURL, title.Status,
		title.NumberOfSeasons, title.NumberOfEpisodes, title.Networks, title.InProduction,
		title.NextEpisode, title.LastEpisode, title.AddedBy, title.LastModifiedBy,
	).Scan(&title.CreatedAt, &title.UpdatedAt)

	return dberr.Wrap(err, "create_title")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Title, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.CatalogTitle.ID)

	title := &Title{}
	err := repository.db.QueryRow(context, query, id).Scan(titleScanTargets(title)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_title_by_id")
	}
	return title, nil
}

func (repository *PostgresRepository) FindByTmdbID(context context.Context, tmdbID int64) (*Title, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.CatalogTitle.TmdbID)
	return repository.probe(context, query, tmdbID, "find_title_by_tmdb_id")
}

func (repository *PostgresRepository) FindByImdbID(context context.Context, imdbID string) (*Title, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.CatalogTitle.ImdbID)
	return repository.probe(context, query, imdbID, "find_title_by_imdb_id")
}

func (repository *PostgresRepository) Update(context context.Context, title *Title) error {
	t := schema.CatalogTitle

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14,
			%s = $15, %s = $16, %s = $17, %s = $18, %s = $19, %s = $20,
			%s = $21, %s = $22, %s = $23, %s = $24, %s = $25,
			%s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.TitleType, t.Source, t.TmdbID, t.ImdbID, t.Title, t.OriginalTitle, t.Tagline,
		t.Overview, t.Genres, t.Languages, t.CastMembers, t.Directors, t.ReleaseDate,
		t.Year, t.Runtime, t.PosterURL, t.Status, t.NumberOfSeasons, t.NumberOfEpisodes,
		t.Networks, t.InProduction, t.NextEpisode, t.LastEpisode, t.LastModifiedBy,
		t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		title.ID,
		title.TitleType, title.Source, title.TmdbID, title.ImdbID,
		title.Title, title.OriginalTitle, title.Tagline, title.Overview,
		title.Genres, title.Languages, title.CastMembers, title.Directors,
		title.ReleaseDate, title.Year, title.Runtime, title.PosterURL, title.Status,
		title.NumberOfSeasons, title.NumberOfEpisodes, title.Networks, title.InProduction,
		title.NextEpisode, title.LastEpisode, title.LastModifiedBy,
	).Scan(&title.UpdatedAt)

	return dberr.Wrap(err, "update_title")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogTitle.Table, schema.CatalogTitle.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_title")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_title")
	}
	return nil
}

// # Helpers

func (repository *PostgresRepository) selectQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(schema.CatalogTitle.Columns(), ", "),
		schema.CatalogTitle.Table)
}

// probe runs an existence lookup where a miss is a nil result, not an error.
func (repository *PostgresRepository) probe(context context.Context, query string, arg any, action string) (*Title, error) {
	title := &Title{}
	err := repository.db.QueryRow(context, query, arg).Scan(titleScanTargets(title)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return title, nil
}

// titleScanTargets returns scan destinations in [schema.CatalogTitle.Columns] order.
func titleScanTargets(title *Title) []any {
	return []any{
		&title.ID, &title.TitleType, &title.Source, &title.TmdbID, &title.ImdbID,
		&title.Title, &title.OriginalTitle, &title.Tagline, &title.Overview,
		&title.Genres, &title.Languages, &title.CastMembers, &title.Directors,
		&title.ReleaseDate, &title.Year, &title.Runtime, &title.PosterURL, &title.Status,
		&title.NumberOfSeasons, &title.NumberOfEpisodes, &title.Networks, &title.InProduction,
		&title.NextEpisode, &title.LastEpisode, &title.AddedBy, &title.LastModifiedBy,
		&title.CreatedAt, &title.UpdatedAt,
	}
}

// ownerRef builds the embedded identity when the join matched.
func ownerRef(userName, email, role *string, createdAt *time.Time) *OwnerRef {
	if userName == nil {
		return nil
	}
	ref := &OwnerRef{UserName: *userName}
	if email != nil {
		ref.Email = *email
	}
	if role != nil {
		ref.Role = sec.UserRole(*role)
	}
	if createdAt != nil {
		ref.CreatedAt = *createdAt
	}
	return ref
}
