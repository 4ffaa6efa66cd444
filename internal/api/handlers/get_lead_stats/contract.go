package get_lead_stats

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

type LeadsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
