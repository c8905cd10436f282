package entities

import "time"

type Order struct {
	ID              string
	Items           []LineItem
	Subtotal        float64
	ShippingCost    float64
	Total           float64
	Status          OrderStatusType
	PaymentMethod   string
	Email           string
	ShippingAddress ShippingAddress
	// CreatedAt нулевое, если в документе не нашлось валидной даты.
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LineItem struct {
	ProductID string
	Quantity  int64
	Price     float64
}

type ShippingAddress struct {
	Name       string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

// StatusFilterAll — sentinel "без фильтра" для выборки по статусу.
const StatusFilterAll = "all"

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderStatusUpdate struct {
	ID        *string
	Status    *OrderStatusType
	UpdatedAt *time.Time
}
