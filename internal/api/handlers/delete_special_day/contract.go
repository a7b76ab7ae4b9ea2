package delete_special_day

import "context"

type ScheduleService interface {
	DeleteSpecialDay(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
