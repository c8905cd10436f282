package orders

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/lifecycle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetAll читает коллекцию orders целиком, как это делала витрина:
// без пагинации, снапшотом. Порядок здесь не гарантируется, сортировку
// по дате создания делает сервисный слой после нормализации дат.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT id, doc FROM orders`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected orders repository getall error: %w", err)
	}
	defer rows.Close()

	orderEntities := make([]entities.Order, 0, 64)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("unexpected orders repository getall error: %w", err)
		}

		orderEntity, err := ToDomain(id, doc)
		if err != nil {
			return nil, fmt.Errorf("unexpected orders repository getall error: %w", err)
		}
		orderEntities = append(orderEntities, *orderEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected orders repository getall error: %w", err)
	}

	return orderEntities, nil
}

// UpdateStatus делает единственную запись, которую этот сервис вообще
// выполняет: merge полей status и updatedAt в документ заказа. Безусловная
// перезапись, без version-check — последняя запись побеждает.
func (r *Repository) UpdateStatus(ctx context.Context, statusUpdate entities.OrderStatusUpdate) (*entities.Order, error) {
	if statusUpdate.ID == nil || statusUpdate.Status == nil || statusUpdate.UpdatedAt == nil {
		return nil, lifecycle.ErrMissingRequiredFields
	}

	builder := qb.
		Update("orders").
		Set("doc", sq.Expr(
			"doc || jsonb_build_object('status', ?::text, 'updatedAt', to_jsonb(?::timestamptz))",
			statusUpdate.Status.String(),
			*statusUpdate.UpdatedAt,
		)).
		Where(sq.Eq{"id": *statusUpdate.ID}).
		Suffix("RETURNING id, doc")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected orders repository updatestatus error: %w", err)
	}

	var (
		id  string
		doc []byte
	)
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected orders repository updatestatus error: %w", err)
	}

	return ToDomain(id, doc)
}
