package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"storefront/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `SELECT id, doc FROM users`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected users repository getall error: %w", err)
	}
	defer rows.Close()

	userEntities := make([]entities.User, 0, 64)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("unexpected users repository getall error: %w", err)
		}

		userEntity, err := ToDomain(id, doc)
		if err != nil {
			return nil, fmt.Errorf("unexpected users repository getall error: %w", err)
		}
		userEntities = append(userEntities, *userEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected users repository getall error: %w", err)
	}

	return userEntities, nil
}
