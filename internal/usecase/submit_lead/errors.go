package submit_lead

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("submit_lead: validation failed")

	// ErrPersistence возвращается, когда запись лида не удалась
	// Уведомления в этом случае не отправляются
	ErrPersistence = errors.New("submit_lead: failed to persist lead")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_lead: internal error")
)

// ValidationError ошибка валидации со списком недостающих полей
type ValidationError struct {
	MissingFields []string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_lead: validation failed: missing required fields: %s",
		strings.Join(e.MissingFields, ", "))
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
