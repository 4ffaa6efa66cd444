package get_lead

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

type LeadsService interface {
	Get(ctx context.Context, leadID int64) (*models.LeadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
