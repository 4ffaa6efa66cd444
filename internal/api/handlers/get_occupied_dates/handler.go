package get_occupied_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates"
)

const (
	msgStoreUnavailable = "календарь занятых дат временно недоступен"
)

type Handler struct {
	service OccupiedDatesService
	logger  Logger
}

func NewHandler(service OccupiedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupied-dates
// Публичный endpoint - без авторизации
// Пустой список - это 200 с пустым массивом; недоступное хранилище - 503
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, occupieddates.ErrStoreUnavailable) {
			h.logger.Error("GET /occupied-dates - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
			return
		}

		h.logger.Error("GET /occupied-dates - Failed to list occupied dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /occupied-dates - Fetched %d occupied dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
