package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/lifecycle"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = entities.StatusFilterAll
	}

	orderEntities, err := h.service.ListOrdersByStatus(r.Context(), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = toOrderDTO(orderEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity entities.Order) dto.Order {
	itemDTOs := make([]dto.LineItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		itemDTOs[i] = dto.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	orderDTO := dto.Order{
		ID:            orderEntity.ID,
		Items:         itemDTOs,
		Subtotal:      orderEntity.Subtotal,
		ShippingCost:  orderEntity.ShippingCost,
		Total:         orderEntity.Total,
		Status:        orderEntity.Status.String(),
		PaymentMethod: orderEntity.PaymentMethod,
		Email:         orderEntity.Email,
		ShippingAddress: dto.ShippingAddress{
			Name:       orderEntity.ShippingAddress.Name,
			Phone:      orderEntity.ShippingAddress.Phone,
			Street:     orderEntity.ShippingAddress.Street,
			City:       orderEntity.ShippingAddress.City,
			State:      orderEntity.ShippingAddress.State,
			PostalCode: orderEntity.ShippingAddress.PostalCode,
		},
	}
	if !orderEntity.CreatedAt.IsZero() {
		createdAt := orderEntity.CreatedAt
		orderDTO.CreatedAt = &createdAt
	}
	if !orderEntity.UpdatedAt.IsZero() {
		updatedAt := orderEntity.UpdatedAt
		orderDTO.UpdatedAt = &updatedAt
	}
	return orderDTO
}
