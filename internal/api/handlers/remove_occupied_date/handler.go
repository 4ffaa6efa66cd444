package remove_occupied_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound         = "дата не помечена занятой"
	msgStoreUnavailable = "хранилище занятых дат временно недоступно"
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

// Handle DELETE /api/v1/admin/occupied-dates/{date}
// Удаление не идемпотентно: повторный запрос по той же дате вернёт 404
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /admin/occupied-dates/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Remove(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, occupieddates.ErrDateNotFound):
			h.logger.Warn("DELETE /admin/occupied-dates/{date} - Date not occupied: %s", dateStr)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, occupieddates.ErrStoreUnavailable):
			h.logger.Error("DELETE /admin/occupied-dates/{date} - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /admin/occupied-dates/{date} - Failed to remove date %s: %v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/occupied-dates/{date} - Date unmarked: %s", dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
