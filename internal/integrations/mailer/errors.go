package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда SMTP-настройки заполнены не полностью
	ErrNotConfigured = errors.New("mailer client: smtp is not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer client: failed to send message")
)
