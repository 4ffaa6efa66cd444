package leads

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// LeadRepository интерфейс репозитория лидов
type LeadRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, filter domain.LeadsFilter) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error)
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
