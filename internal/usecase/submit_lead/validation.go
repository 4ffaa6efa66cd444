package submit_lead

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
//
// Email проверяется только на наличие, без проверки формата: заявка с
// кривым адресом всё равно ценнее потерянной. Форматная проверка адресов
// живёт на админской стороне (список рассылки в конфигурации)
func validateRequest(req *Request) error {
	missing := make([]string, 0, 2)

	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}

	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long (max %d)", ErrValidation, domain.MaxNameLength)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long (max %d)", ErrValidation, domain.MaxEmailLength)
	}
	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long (max %d)", ErrValidation, domain.MaxPhoneLength)
	}
	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long (max %d)", ErrValidation, domain.MaxMessageLength)
	}
	if req.GuestCount != nil && (*req.GuestCount < domain.MinGuestCount || *req.GuestCount > domain.MaxGuestCount) {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrValidation, domain.MinGuestCount, domain.MaxGuestCount)
	}

	return nil
}
