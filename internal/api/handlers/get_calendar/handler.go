package get_calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/calendar"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

const (
	msgInvalidYear      = "некорректный год"
	msgInvalidMonth     = "некорректный месяц"
	msgInvalidSelected  = "некорректный формат выбранной даты, ожидается YYYY-MM-DD"
	msgStoreUnavailable = "календарь временно недоступен, попробуйте ещё раз"
)

type Handler struct {
	provider OccupiedDatesProvider
	logger   Logger
}

func NewHandler(provider OccupiedDatesProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: year, month (опционально, по умолчанию текущий месяц),
// selected (опционально, YYYY-MM-DD)
// Публичный endpoint - без авторизации
//
// Сетка отдаётся целиком или не отдаётся вовсе: при недоступном
// хранилище занятых дат возвращается 503, частично загруженный
// календарь не показывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	engine := calendar.NewEngine(h.provider, h.logger, opts...)
	if err := engine.Load(r.Context()); err != nil {
		h.logger.Error("GET /calendar - Failed to load occupied dates: %v", err)
		handlers.RespondServiceUnavailable(w, msgStoreUnavailable)
		return
	}

	result := FromEngine(engine)

	h.logger.Info("GET /calendar - Rendered %d/%d with %d cells",
		result.Year, result.Month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// paramError ошибка парсинга query-параметра с готовым сообщением
type paramError string

func (e paramError) Error() string { return string(e) }

func parseOptions(r *http.Request) ([]calendar.Option, error) {
	opts := make([]calendar.Option, 0, 2)

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	// Год и месяц задаются только парой; по одиночке берётся текущий месяц
	if yearStr != "" && monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1 {
			return nil, paramError(msgInvalidYear)
		}

		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return nil, paramError(msgInvalidMonth)
		}

		opts = append(opts, calendar.WithMonth(year, time.Month(month)))
	}

	if selectedStr := r.URL.Query().Get("selected"); selectedStr != "" {
		selected, err := time.Parse(domain.DateFormat, selectedStr)
		if err != nil {
			return nil, paramError(msgInvalidSelected)
		}
		opts = append(opts, calendar.WithSelected(selected))
	}

	return opts, nil
}
