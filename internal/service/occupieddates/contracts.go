package occupieddates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// OccupiedDateRepository интерфейс репозитория занятых дат
type OccupiedDateRepository interface {
	ListAll(ctx context.Context) ([]domain.OccupiedDate, error)
	Create(ctx context.Context, date time.Time) (*domain.OccupiedDate, error)
	DeleteByDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
