package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"storefront/internal/entities"
)

const (
	recentOrdersLimit = 5
	topProductsLimit  = 5
)

type Analytics struct {
	orderRepository   OrderRepository
	userRepository    UserRepository
	productRepository ProductRepository
}

func New(
	orderRepository OrderRepository,
	userRepository UserRepository,
	productRepository ProductRepository,
) *Analytics {
	return &Analytics{
		orderRepository:   orderRepository,
		userRepository:    userRepository,
		productRepository: productRepository,
	}
}

// DashboardStats считает сводку для админской панели. Три коллекции
// читаются снапшотами параллельно; callerID исключается из числа
// покупателей, чтобы админ не считал сам себя.
func (s *Analytics) DashboardStats(ctx context.Context, callerID string, period entities.PeriodFilter) (*entities.DashboardStats, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}

	var (
		orderEntities   []entities.Order
		userEntities    []entities.User
		productEntities []entities.Product
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		orderEntities, err = s.orderRepository.GetAll(groupCtx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		userEntities, err = s.userRepository.GetAll(groupCtx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		productEntities, err = s.productRepository.GetAll(groupCtx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	included := IncludedOrders(orderEntities, period)

	var totalRevenue float64
	for _, orderEntity := range included {
		totalRevenue += orderEntity.Total
	}

	var totalCustomers int64
	for _, userEntity := range userEntities {
		if userEntity.Role != entities.RoleUser {
			continue
		}
		if userEntity.ID == callerID {
			continue
		}
		totalCustomers++
	}

	return &entities.DashboardStats{
		TotalRevenue:   totalRevenue,
		TotalOrders:    int64(len(included)),
		TotalCustomers: totalCustomers,
		TotalProducts:  int64(len(productEntities)),
		RecentOrders:   RecentOrders(orderEntities, recentOrdersLimit),
		TopProducts:    SalesByProduct(included, productEntities, topProductsLimit),
	}, nil
}

// ValidatePeriod проверяет селекторы: месяц витрина нумерует 0-11.
func ValidatePeriod(period entities.PeriodFilter) error {
	if period.Month != nil && (*period.Month < 0 || *period.Month > 11) {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, *period.Month)
	}
	if period.Year != nil && *period.Year < 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, *period.Year)
	}
	return nil
}
