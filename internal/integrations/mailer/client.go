package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// defaultSMTPPort порт по умолчанию при незаполненном поле настроек
const defaultSMTPPort = 587

// Client SMTP-клиент для отправки уведомлений о бронированиях
type Client struct {
	log Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(log Logger) *Client {
	return &Client{log: log}
}

// Send отправляет письмо через указанный SMTP-сервер
// Вызывается из нотификатора best-effort: ошибка отправки логируется
// вызывающим и никогда не откатывает бронирование
func (c *Client) Send(cfg SMTPConfig, msg Message) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return ErrNotConfigured
	}

	port := cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.User, cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if msg.ICS != "" {
		ics := msg.ICS
		m.Attach("invite.ics", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.WriteString(w, ics)
			return err
		}))
	}

	dialer := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password)

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, err)
	}

	c.log.Info("Mail sent to %s, subject=%q", msg.To, msg.Subject)
	return nil
}
