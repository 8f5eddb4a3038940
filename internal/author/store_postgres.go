// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/authors/internal/platform/apperr"
	"github.com/taibuivan/authors/internal/platform/database/schema"
	"github.com/taibuivan/authors/internal/platform/dberr"
)

const resourceName = "Author"

// DB is the subset of *pgxpool.Pool the repository needs. A pgx.Tx also satisfies it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Authors.Projection(), schema.Authors.Table, schema.Authors.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_authors")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Gender, &a.Country); err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_author")
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_authors")
	}

	return authors, nil
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Authors.Projection(), schema.Authors.Table, schema.Authors.ID,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.Name, &a.Gender, &a.Country)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_author")
	}

	return a, nil
}

// GetAuthorForWrite is GetAuthor: every Postgres read hits the table.
func (repository *PostgresRepository) GetAuthorForWrite(context context.Context, id int64) (*Author, error) {
	return repository.GetAuthor(context, id)
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s
	`,
		schema.Authors.Table, schema.Authors.Name, schema.Authors.Gender, schema.Authors.Country,
		schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
		schema.Authors.ID,
	)

	err := repository.db.QueryRow(context, query, a.Name, a.Gender, a.Country).Scan(&a.ID)
	return dberr.Wrap(err, resourceName, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
	`,
		schema.Authors.Table, schema.Authors.Name, schema.Authors.Gender, schema.Authors.Country,
		schema.Authors.UpdatedAt, schema.Authors.ID,
	)

	cmd, err := repository.db.Exec(context, query, a.ID, a.Name, a.Gender, a.Country)
	if err != nil {
		return dberr.Wrap(err, resourceName, "update_author")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Authors.Table, schema.Authors.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}
