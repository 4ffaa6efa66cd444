package add_occupied_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates/models"
)

type OccupiedDatesService interface {
	Add(ctx context.Context, date time.Time) (*models.OccupiedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
