package delete_leads

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyIDList        = "список ID пуст"
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

// Handle POST /api/v1/admin/leads/delete
// Пакетное удаление лидов по списку ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteLeadsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/leads/delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	deleted, err := h.service.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, leads.ErrInvalidInput) {
			h.logger.Warn("POST /admin/leads/delete - Empty id list")
			handlers.RespondBadRequest(w, msgEmptyIDList)
			return
		}

		h.logger.Error("POST /admin/leads/delete - Failed to delete leads: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/leads/delete - Deleted %d of %d leads", deleted, len(req.IDs))
	handlers.RespondJSON(w, http.StatusOK, DeleteLeadsResponse{Deleted: deleted})
}
