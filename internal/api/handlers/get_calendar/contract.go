package get_calendar

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/calendar"
)

// OccupiedDatesProvider источник занятых дат для движка календаря
type OccupiedDatesProvider = calendar.OccupiedDatesProvider

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
