package submit_contact

import (
	"context"

	submitLead "github.com/m04kA/SMC-VenueBookingService/internal/usecase/submit_lead"
)

type SubmitLeadUseCase interface {
	Execute(ctx context.Context, req *submitLead.Request) (*submitLead.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
