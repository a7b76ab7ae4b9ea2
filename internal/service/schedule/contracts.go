package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeekly(ctx context.Context) (domain.WeeklySchedule, error)
	ReplaceWeekly(ctx context.Context, schedule domain.WeeklySchedule) error
	GetSpecialDay(ctx context.Context, date time.Time) (*domain.SpecialDayOverride, error)
	ListSpecialDays(ctx context.Context) ([]*domain.SpecialDayOverride, error)
	UpsertSpecialDay(ctx context.Context, override *domain.SpecialDayOverride) (*domain.SpecialDayOverride, error)
	DeleteSpecialDay(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
