package products

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

func (r *Repository) GetAll(ctx context.Context) ([]entities.Product, error) {
	query := `SELECT id, doc FROM products`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected products repository getall error: %w", err)
	}
	defer rows.Close()

	productEntities := make([]entities.Product, 0, 64)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("unexpected products repository getall error: %w", err)
		}

		productEntity, err := ToDomain(id, doc)
		if err != nil {
			return nil, fmt.Errorf("unexpected products repository getall error: %w", err)
		}
		productEntities = append(productEntities, *productEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected products repository getall error: %w", err)
	}

	return productEntities, nil
}
