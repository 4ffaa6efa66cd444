package get_leads

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

type LeadsService interface {
	List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
