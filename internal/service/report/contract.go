//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

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

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
