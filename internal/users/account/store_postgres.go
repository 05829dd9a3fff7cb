// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package account

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.UserName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.Status,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		user.ID, user.UserName, user.Email, user.PasswordHash,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.UserAccount.ID)
	return repository.scanOne(context, query, id, "find_user_by_id")
}

func (repository *PostgresRepository) FindByUserName(context context.Context, userName string) (*User, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.UserAccount.UserName)
	return repository.scanOne(context, query, userName, "find_user_by_name")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, foldedEmail string) (*User, error) {
	query := repository.selectQuery() + fmt.Sprintf(" WHERE %s = $1", schema.UserAccount.Email)
	return repository.scanOne(context, query, foldedEmail, "find_user_by_email")
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*User, int, error) {
	// COUNT(*) OVER() rides along on every row so one round-trip yields
	// both the page and the pre-pagination total.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.UserAccount.ID, schema.UserAccount.UserName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.Status,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
		schema.UserAccount.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, nullableLimit(limit), offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	var total int
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID, &user.UserName, &user.Email, &user.PasswordHash,
			&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.Status,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.PasswordHash, user.Role, user.Status,
	).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) selectQuery() string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.UserAccount.ID, schema.UserAccount.UserName, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.Role, schema.UserAccount.Status,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
	)
}

func (repository *PostgresRepository) scanOne(context context.Context, query, arg, action string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return user, nil
}

// nullableLimit turns the all-rows sentinel (limit 0) into SQL NULL, which
// Postgres treats as LIMIT ALL.
func nullableLimit(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
