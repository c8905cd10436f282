//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=analytics_test
package analytics

import (
	"context"

	"storefront/internal/entities"
)

type OrderRepository interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]entities.User, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]entities.Product, error)
}
