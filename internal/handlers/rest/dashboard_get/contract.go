//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_get_test
package dashboard_get

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
	DashboardStats(ctx context.Context, callerID string, period entities.PeriodFilter) (*entities.DashboardStats, error)
}
