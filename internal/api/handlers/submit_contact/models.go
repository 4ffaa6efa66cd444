package submit_contact

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	submitLead "github.com/m04kA/SMC-VenueBookingService/internal/usecase/submit_lead"
)

// SubmitContactRequest HTTP request model
type SubmitContactRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	EventType   *string `json:"eventType,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"` // "2026-06-20"
	GuestCount  *int    `json:"guestCount,omitempty"`
	BudgetRange *string `json:"budgetRange,omitempty"`
	Message     *string `json:"message,omitempty"`
}

// SubmitContactResponse HTTP response model
type SubmitContactResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ValidationErrorResponse ответ 400 со списком недостающих полей
type ValidationErrorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата мероприятия парсится здесь, на границе HTTP
func (r *SubmitContactRequest) ToUseCaseRequest() (*submitLead.Request, error) {
	req := &submitLead.Request{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		EventType:   r.EventType,
		GuestCount:  r.GuestCount,
		BudgetRange: r.BudgetRange,
		Message:     r.Message,
	}

	if r.EventDate != nil && *r.EventDate != "" {
		eventDate, err := time.Parse(domain.DateFormat, *r.EventDate)
		if err != nil {
			return nil, err
		}
		req.EventDate = &eventDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitLead.Response) *SubmitContactResponse {
	return &SubmitContactResponse{
		ID:        resp.ID,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
