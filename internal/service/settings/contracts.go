package settings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
	Save(ctx context.Context, s *domain.VenueSettings) (*domain.VenueSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
