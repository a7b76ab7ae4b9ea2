package notifier

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/mailer"
)

// MailerClient интерфейс почтового клиента
type MailerClient interface {
	Send(cfg mailer.SMTPConfig, msg mailer.Message) error
}

// SettingsRepository интерфейс репозитория настроек заведения
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
}

// ReservationRepository интерфейс репозитория бронирований
// Нотификатору нужна только пометка об отправленном письме
type ReservationRepository interface {
	MarkEmailSent(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
