package add_occupied_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateConflict       = "дата уже помечена занятой"
	msgStoreUnavailable   = "хранилище занятых дат временно недоступно"
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

// Handle POST /api/v1/admin/occupied-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddOccupiedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/occupied-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/occupied-dates - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Add(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, occupieddates.ErrDateConflict):
			h.logger.Warn("POST /admin/occupied-dates - Date already occupied: %s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateConflict)

		case errors.Is(err, occupieddates.ErrStoreUnavailable):
			h.logger.Error("POST /admin/occupied-dates - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /admin/occupied-dates - Failed to add date %s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/occupied-dates - Date marked occupied: %s, id=%d", result.Date, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
