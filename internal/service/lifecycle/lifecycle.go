package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"storefront/internal/entities"
)

type Lifecycle struct {
	repository Repository
}

func New(repository Repository) *Lifecycle {
	return &Lifecycle{
		repository: repository,
	}
}

// ListOrders возвращает все заказы, отсортированные по убыванию даты
// создания. Заказ без валидной даты получает "сейчас", чтобы оказаться
// в начале списка, а не потеряться в хвосте.
func (s *Lifecycle) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.ListOrdersByStatus(ctx, entities.StatusFilterAll)
}

func (s *Lifecycle) ListOrdersByStatus(ctx context.Context, statusFilter string) ([]entities.Order, error) {
	if statusFilter != entities.StatusFilterAll && !isValidStatus(statusFilter) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, statusFilter)
	}

	orderEntities, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	now := time.Now().UTC()
	filtered := make([]entities.Order, 0, len(orderEntities))
	for _, orderEntity := range orderEntities {
		if statusFilter != entities.StatusFilterAll && orderEntity.Status.String() != statusFilter {
			continue
		}
		if orderEntity.CreatedAt.IsZero() {
			orderEntity.CreatedAt = now
		}
		filtered = append(filtered, orderEntity)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// ChangeStatus — единственная точка входа для смены статуса заказа.
// Переходы между распознанными статусами не ограничены: стафф может
// руками вернуть delivered в pending. Если когда-нибудь понадобится
// state-machine, таблица запрещенных переходов добавляется здесь,
// не трогая вызывающих.
func (s *Lifecycle) ChangeStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status.String()) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	updatedAt := time.Now().UTC()
	statusUpdate := entities.OrderStatusUpdate{
		ID:        &orderID,
		Status:    &status,
		UpdatedAt: &updatedAt,
	}

	// одна безусловная запись, без ретраев: при ошибке хранимое состояние
	// не менялось и вызывающий видит прежний статус
	orderEntity, err := s.repository.UpdateStatus(ctx, statusUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return orderEntity, nil
}
