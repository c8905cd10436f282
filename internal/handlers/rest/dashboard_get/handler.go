package dashboard_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/analytics"
	"storefront/pkg/logger"
)

// CallerIDHeader проставляется auth-прокси перед этим сервисом.
const CallerIDHeader = "X-User-ID"

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
	period, err := parsePeriod(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	callerID := r.Header.Get(CallerIDHeader)

	stats, err := h.service.DashboardStats(r.Context(), callerID, period)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	statsDTO := dto.DashboardStats{
		TotalRevenue:   stats.TotalRevenue,
		TotalOrders:    stats.TotalOrders,
		TotalCustomers: stats.TotalCustomers,
		TotalProducts:  stats.TotalProducts,
		RecentOrders:   make([]dto.Order, len(stats.RecentOrders)),
		TopProducts:    make([]dto.ProductSales, len(stats.TopProducts)),
	}
	for i, orderEntity := range stats.RecentOrders {
		statsDTO.RecentOrders[i] = toOrderDTO(orderEntity)
	}
	for i, productSales := range stats.TopProducts {
		statsDTO.TopProducts[i] = dto.ProductSales{
			ProductID: productSales.ProductID,
			Name:      productSales.Name,
			TotalSold: productSales.TotalSold,
			Revenue:   productSales.Revenue,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(statsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parsePeriod читает селекторы month (0-11) и year; отсутствующий параметр
// означает "все".
func parsePeriod(r *http.Request) (entities.PeriodFilter, error) {
	var period entities.PeriodFilter

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return entities.PeriodFilter{}, err
		}
		period.Month = &month
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return entities.PeriodFilter{}, err
		}
		period.Year = &year
	}

	return period, nil
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
