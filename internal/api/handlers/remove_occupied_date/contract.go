package remove_occupied_date

import (
	"context"
	"time"
)

type OccupiedDatesService interface {
	Remove(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
