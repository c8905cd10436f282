//go:build wireinject
// +build wireinject

package app

import (
	"context"

	dashboard_get "storefront/internal/handlers/rest/dashboard_get"
	order_status_put "storefront/internal/handlers/rest/order_status_put"
	orders_get "storefront/internal/handlers/rest/orders_get"
	report_get "storefront/internal/handlers/rest/report_get"
	"storefront/internal/pkg/config"

	ordersRepo "storefront/internal/repository/orders"
	productsRepo "storefront/internal/repository/products"
	usersRepo "storefront/internal/repository/users"
	analyticsService "storefront/internal/service/analytics"
	lifecycleService "storefront/internal/service/lifecycle"
	reportService "storefront/internal/service/report"

	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceLifecycle ServiceLifecycle
	ServiceAnalytics ServiceAnalytics
	ServiceReport    ServiceReport
}

type ServiceLifecycle interface {
	orders_get.Service
	order_status_put.Service
}

type ServiceAnalytics interface {
	dashboard_get.Service
}

type ServiceReport interface {
	report_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrdersRepository,
		provideUsersRepository,
		provideProductsRepository,

		provideServiceLifecycle,
		provideServiceAnalytics,
		provideServiceReport,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceAnalytics), new(*analyticsService.Analytics)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),

		wire.Bind(new(lifecycleService.Repository), new(*ordersRepo.Repository)),
		wire.Bind(new(analyticsService.OrderRepository), new(*ordersRepo.Repository)),
		wire.Bind(new(analyticsService.UserRepository), new(*usersRepo.Repository)),
		wire.Bind(new(analyticsService.ProductRepository), new(*productsRepo.Repository)),
		wire.Bind(new(reportService.OrderRepository), new(*ordersRepo.Repository)),
		wire.Bind(new(reportService.UserRepository), new(*usersRepo.Repository)),
		wire.Bind(new(reportService.ProductRepository), new(*productsRepo.Repository)),

		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrdersRepository(querier *querier.Querier) *ordersRepo.Repository {
	return ordersRepo.New(querier)
}

func provideUsersRepository(querier *querier.Querier) *usersRepo.Repository {
	return usersRepo.New(querier)
}

func provideProductsRepository(querier *querier.Querier) *productsRepo.Repository {
	return productsRepo.New(querier)
}

func provideServiceLifecycle(repository lifecycleService.Repository) *lifecycleService.Lifecycle {
	return lifecycleService.New(repository)
}

func provideServiceAnalytics(
	orderRepository analyticsService.OrderRepository,
	userRepository analyticsService.UserRepository,
	productRepository analyticsService.ProductRepository,
) *analyticsService.Analytics {
	return analyticsService.New(orderRepository, userRepository, productRepository)
}

func provideServiceReport(
	orderRepository reportService.OrderRepository,
	userRepository reportService.UserRepository,
	productRepository reportService.ProductRepository,
	txManager reportService.TxManager,
) *reportService.Report {
	return reportService.New(
		orderRepository,
		userRepository,
		productRepository,
		txManager,
	)
}
