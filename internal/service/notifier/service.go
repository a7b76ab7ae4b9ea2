package notifier

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/mailer"
)

// notifyTimeout бюджет на фоновую отправку писем по одной брони
const notifyTimeout = 30 * time.Second

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service отправляет гостю и администратору письма о смене статуса брони.
// Ошибки отправки логируются и никогда не влияют на судьбу самой брони.
type Service struct {
	mailer       MailerClient
	settings     SettingsRepository
	reservations ReservationRepository
	clock        TimeProvider
	logger       Logger
}

func New(mailerClient MailerClient, settings SettingsRepository, reservations ReservationRepository, clock TimeProvider, logger Logger) *Service {
	return &Service{
		mailer:       mailerClient,
		settings:     settings,
		reservations: reservations,
		clock:        clock,
		logger:       logger,
	}
}

// NotifyAsync запускает отправку уведомлений в фоне с собственным контекстом:
// бронь уже зафиксирована, её результат не должен зависеть от почты
func (s *Service) NotifyAsync(res *domain.Reservation) {
	snapshot := *res
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.Notify(ctx, &snapshot)
	}()
}

// Notify отправляет письмо гостю (с календарным приглашением) и короткую
// служебную сводку администратору. Возвращает управление молча:
// все сбои уходят в лог
func (s *Service) Notify(ctx context.Context, res *domain.Reservation) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Error("[Notifier.Notify] Не удалось получить настройки заведения: reservation_id=%s, err=%v", res.ID, err)
		return
	}

	if !settings.SMTPConfigured() {
		s.logger.Warn("[Notifier.Notify] SMTP не настроен, письмо не отправлено: reservation_id=%s", res.ID)
		return
	}

	cfg := mailer.SMTPConfig{
		Host:     settings.SMTPHost,
		Port:     settings.SMTPPort,
		User:     settings.SMTPUser,
		Password: settings.SMTPPass,
		FromName: settings.RestaurantName,
	}

	vars := templateVars(res, settings)
	subject := renderTemplate(settings.SubjectFor(res.Status), vars)
	body := renderTemplate(settings.TemplateFor(res.Status), vars)

	msg := mailer.Message{
		To:      res.Email,
		Subject: subject,
		Body:    body,
	}
	// Приглашение в календарь прикладываем, пока бронь жива
	if res.IsActive() {
		msg.ICS = buildICS(res, settings, s.clock.Now())
	}

	if err := s.mailer.Send(cfg, msg); err != nil {
		s.logger.Error("[Notifier.Notify] Не удалось отправить письмо гостю: reservation_id=%s, to=%s, err=%v", res.ID, res.Email, err)
	} else {
		s.logger.Info("[Notifier.Notify] Письмо гостю отправлено: reservation_id=%s, status=%s", res.ID, res.Status)
		if err := s.reservations.MarkEmailSent(ctx, res.ID); err != nil {
			s.logger.Warn("[Notifier.Notify] Не удалось пометить бронь отправленной: reservation_id=%s, err=%v", res.ID, err)
		}
	}

	// Администратор получает служебную сводку даже если письмо гостю не ушло
	if settings.AdminEmail != "" {
		adminSubject, adminBody := adminNotice(res)
		adminMsg := mailer.Message{
			To:      settings.AdminEmail,
			Subject: adminSubject,
			Body:    adminBody,
		}
		if err := s.mailer.Send(cfg, adminMsg); err != nil {
			s.logger.Error("[Notifier.Notify] Не удалось отправить уведомление администратору: reservation_id=%s, to=%s, err=%v", res.ID, settings.AdminEmail, err)
		}
	}
}
