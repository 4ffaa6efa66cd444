package delete_lead

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

// Handle DELETE /api/v1/admin/leads/{leadId}
// Жёсткое удаление без tombstone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leadIDStr := vars["leadId"]

	leadID, err := strconv.ParseInt(leadIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/leads/{id} - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	if err := h.service.Delete(r.Context(), leadID); err != nil {
		if errors.Is(err, leads.ErrLeadNotFound) {
			h.logger.Warn("DELETE /admin/leads/{id} - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /admin/leads/{id} - Failed to delete lead: lead_id=%d, error=%v", leadID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/leads/{id} - Lead deleted: lead_id=%d", leadID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
