package report_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/entities"
	"storefront/internal/service/analytics"
	"storefront/pkg/logger"
)

const callerIDHeader = "X-User-ID"

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

	callerID := r.Header.Get(callerIDHeader)

	file, err := h.service.Build(r.Context(), callerID, period)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(file.Data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write report response")
	}
}

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
