package orders

import "encoding/json"

// OrderDoc повторяет строение документа в коллекции orders.
// createdAt/updatedAt хранятся сырыми: исторически витрина писала дату
// то строкой RFC3339, то числом секунд, то объектом {"seconds": n}.
type OrderDoc struct {
	Items           []LineItemDoc      `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	ShippingCost    float64            `json:"shippingCost"`
	Total           float64            `json:"total"`
	Status          string             `json:"status"`
	PaymentMethod   string             `json:"paymentMethod"`
	Email           string             `json:"email"`
	ShippingAddress ShippingAddressDoc `json:"shippingAddress"`
	CreatedAt       json.RawMessage    `json:"createdAt"`
	UpdatedAt       json.RawMessage    `json:"updatedAt"`
}

type LineItemDoc struct {
	ProductID string  `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type ShippingAddressDoc struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type timestampDoc struct {
	Seconds *int64 `json:"seconds"`
}
