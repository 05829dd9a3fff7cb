// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package link

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

func (repository *PostgresRepository) Create(context context.Context, link *Link) error {
	l := schema.CatalogLink

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		l.Table,
		l.ID, l.ParentID, l.ContentType, l.LinkType, l.Quality, l.URL,
		l.Title, l.Remarks, l.CreatedAt, l.UpdatedAt,
		l.CreatedAt, l.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		link.ID, link.ParentID, link.ContentType, link.LinkType,
		link.Quality, link.URL, link.Title, link.Remarks,
	).Scan(&link.CreatedAt, &link.UpdatedAt)

	return dberr.Wrap(err, "create_link")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Link, error) {
	l := schema.CatalogLink
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", l.ID)

	link := &Link{}
	err := repository.db.QueryRow(context, query, id).Scan(scanTargets(link)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_link_by_id")
	}
	return link, nil
}

func (repository *PostgresRepository) ListByTitle(context context.Context, titleID string) ([]*Link, error) {
	l := schema.CatalogLink
	query := repository.selectQuery() +
		fmt.Sprintf(" WHERE %s = $1 ORDER BY %s ASC", l.ParentID, l.CreatedAt)

	rows, err := repository.db.Query(context, query, titleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_links_by_title")
	}
	defer rows.Close()

	var links []*Link
	for rows.Next() {
		link := &Link{}
		if err := rows.Scan(scanTargets(link)...); err != nil {
			return nil, dberr.Wrap(err, "scan_link")
		}
		links = append(links, link)
	}

	return links, nil
}

func (repository *PostgresRepository) Update(context context.Context, link *Link) error {
	l := schema.CatalogLink

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		l.Table,
		l.ContentType, l.LinkType, l.Quality, l.URL, l.Title, l.Remarks,
		l.UpdatedAt,
		l.ID,
		l.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		link.ID, link.ContentType, link.LinkType, link.Quality,
		link.URL, link.Title, link.Remarks,
	).Scan(&link.UpdatedAt)

	return dberr.Wrap(err, "update_link")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	l := schema.CatalogLink
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, l.Table, l.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_link")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_link")
	}
	return nil
}

func (repository *PostgresRepository) DeleteByTitle(context context.Context, titleID string) error {
	l := schema.CatalogLink
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, l.Table, l.ParentID)

	_, err := repository.db.Exec(context, query, titleID)
	return dberr.Wrap(err, "delete_links_by_title")
}

func (repository *PostgresRepository) selectQuery() string {
	l := schema.CatalogLink
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		l.ID, l.ParentID, l.ContentType, l.LinkType, l.Quality, l.URL,
		l.Title, l.Remarks, l.CreatedAt, l.UpdatedAt,
		l.Table,
	)
}

func scanTargets(link *Link) []any {
	return []any{
		&link.ID, &link.ParentID, &link.ContentType, &link.LinkType,
		&link.Quality, &link.URL, &link.Title, &link.Remarks,
		&link.CreatedAt, &link.UpdatedAt,
	}
}
