package orders

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/entities"
)

func ToDomain(id string, doc []byte) (*entities.Order, error) {
	var orderDoc OrderDoc
	if err := json.Unmarshal(doc, &orderDoc); err != nil {
		return nil, fmt.Errorf("decode order document %s: %w", id, err)
	}

	status := entities.OrderStatusType(orderDoc.Status)
	if orderDoc.Status == "" {
		status = entities.DefaultOrderStatus
	}

	items := make([]entities.LineItem, len(orderDoc.Items))
	for i, item := range orderDoc.Items {
		items[i] = entities.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return &entities.Order{
		ID:            id,
		Items:         items,
		Subtotal:      orderDoc.Subtotal,
		ShippingCost:  orderDoc.ShippingCost,
		Total:         orderDoc.Total,
		Status:        status,
		PaymentMethod: orderDoc.PaymentMethod,
		Email:         orderDoc.Email,
		ShippingAddress: entities.ShippingAddress{
			Name:       orderDoc.ShippingAddress.Name,
			Phone:      orderDoc.ShippingAddress.Phone,
			Street:     orderDoc.ShippingAddress.Street,
			City:       orderDoc.ShippingAddress.City,
			State:      orderDoc.ShippingAddress.State,
			PostalCode: orderDoc.ShippingAddress.PostalCode,
		},
		CreatedAt: NormalizeTimestamp(orderDoc.CreatedAt),
		UpdatedAt: NormalizeTimestamp(orderDoc.UpdatedAt),
	}, nil
}

// NormalizeTimestamp приводит все исторические форматы даты документа к
// time.Time. Нераспознанное значение превращается в нулевое время, а не в
// ошибку: такие заказы исключаются из выборок по датам выше по стеку.
func NormalizeTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, str); err == nil {
				return t.UTC()
			}
		}
		return time.Time{}
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil {
		return time.Unix(int64(seconds), 0).UTC()
	}

	var ts timestampDoc
	if err := json.Unmarshal(raw, &ts); err == nil && ts.Seconds != nil {
		return time.Unix(*ts.Seconds, 0).UTC()
	}

	return time.Time{}
}
