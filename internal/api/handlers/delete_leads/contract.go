package delete_leads

import "context"

type LeadsService interface {
	DeleteBulk(ctx context.Context, ids []int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
