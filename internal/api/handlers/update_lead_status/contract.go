package update_lead_status

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

type LeadsService interface {
	TransitionStatus(ctx context.Context, leadID int64, req *models.TransitionStatusRequest) (*models.LeadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
