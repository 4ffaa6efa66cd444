package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	submitLead "github.com/m04kA/SMC-VenueBookingService/internal/usecase/submit_lead"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEventDate   = "некорректный формат даты мероприятия, ожидается YYYY-MM-DD"
	msgValidationFailed   = "не заполнены обязательные поля"
	msgInvalidFieldValues = "недопустимые значения полей"
	msgTryAgain           = "не удалось сохранить заявку, попробуйте ещё раз"
)

type Handler struct {
	useCase SubmitLeadUseCase
	logger  Logger
}

func NewHandler(useCase SubmitLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /contact - Failed to parse event date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *submitLead.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /contact - Missing required fields: %v", validationErr.MissingFields)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:         msgValidationFailed,
				MissingFields: validationErr.MissingFields,
			})

		case errors.Is(err, submitLead.ErrValidation):
			// Не недостающие поля, а выход значений за допустимые пределы
			h.logger.Warn("POST /contact - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFieldValues)

		case errors.Is(err, submitLead.ErrPersistence):
			// Запись не удалась - для клиента это повторяемая ошибка
			h.logger.Error("POST /contact - Failed to persist lead: %v", err)
			handlers.RespondServiceUnavailable(w, msgTryAgain)

		default:
			h.logger.Error("POST /contact - Failed to submit lead: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Успех подтверждается независимо от исхода уведомлений
	h.logger.Info("POST /contact - Lead submitted successfully: lead_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
