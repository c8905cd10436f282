//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ChangeStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
