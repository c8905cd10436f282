package entities

import "time"

// PeriodFilter ограничивает выборку заказов календарным месяцем/годом.
// nil-поле означает "все".
type PeriodFilter struct {
	Month *int // 0-11, как хранит витрина
	Year  *int
}

func (f PeriodFilter) Matches(orderCreatedAt time.Time) bool {
	if f.Month == nil && f.Year == nil {
		return true
	}

	// заказы без валидной даты не попадают в отфильтрованные выборки
	if orderCreatedAt.IsZero() {
		return false
	}

	if f.Month != nil && int(orderCreatedAt.Month())-1 != *f.Month {
		return false
	}
	if f.Year != nil && orderCreatedAt.Year() != *f.Year {
		return false
	}
	return true
}

type DashboardStats struct {
	TotalRevenue   float64
	TotalOrders    int64
	TotalCustomers int64
	TotalProducts  int64
	RecentOrders   []Order
	TopProducts    []ProductSales
}
