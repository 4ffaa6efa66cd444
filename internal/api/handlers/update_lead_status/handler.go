package update_lead_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

const (
	msgInvalidLeadID      = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус заявки"
	msgNotFound           = "заявка не найдена"
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

// Handle PATCH /api/v1/admin/leads/{leadId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leadIDStr := vars["leadId"]

	leadID, err := strconv.ParseInt(leadIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/leads/{id}/status - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	var req models.TransitionStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/leads/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.TransitionStatus(r.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/leads/{id}/status - Invalid status=%s: lead_id=%d", req.Status, leadID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("PATCH /admin/leads/{id}/status - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/leads/{id}/status - Failed to transition status: lead_id=%d, error=%v",
				leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/leads/{id}/status - Status updated: lead_id=%d, status=%s",
		leadID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
