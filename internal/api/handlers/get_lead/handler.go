package get_lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads"
)

const (
	msgInvalidLeadID = "некорректный ID заявки"
	msgNotFound      = "заявка не найдена"
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

// Handle GET /api/v1/admin/leads/{leadId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leadIDStr := vars["leadId"]

	leadID, err := strconv.ParseInt(leadIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/leads/{id} - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	result, err := h.service.Get(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, leads.ErrLeadNotFound) {
			h.logger.Warn("GET /admin/leads/{id} - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /admin/leads/{id} - Failed to fetch lead: lead_id=%d, error=%v", leadID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/leads/{id} - Lead fetched: lead_id=%d", leadID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
