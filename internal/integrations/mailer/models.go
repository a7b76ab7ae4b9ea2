package mailer

// SMTPConfig параметры SMTP-сервера для отправки письма
// Берутся из настроек заведения на каждую отправку - правки админа
// применяются без перезапуска сервиса
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

// Message одно исходящее письмо
type Message struct {
	To      string
	Subject string
	Body    string

	// ICS календарное приглашение; пустая строка - без вложения
	ICS string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
