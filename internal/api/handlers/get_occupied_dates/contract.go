package get_occupied_dates

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates/models"
)

type OccupiedDatesService interface {
	List(ctx context.Context) (*models.OccupiedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
