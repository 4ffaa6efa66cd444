package get_leads

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service LeadsService
	logger  Logger
}

func NewHandler(service LeadsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/leads
// Query params: status, from, to (опционально; from/to - YYYY-MM-DD по created_at)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/leads - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, leads.ErrInvalidInput) {
			h.logger.Warn("GET /admin/leads - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		h.logger.Error("GET /admin/leads - Failed to list leads: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/leads - Fetched %d leads", len(result.Leads))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseRequest(r *http.Request) (*models.ListLeadsRequest, error) {
	req := &models.ListLeadsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.FromDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		// Конец периода - включительно, до конца дня
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		req.ToDate = &to
	}

	return req, nil
}
