//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, statusUpdate entities.OrderStatusUpdate) (*entities.Order, error)
}
