package domain

import "time"

// Default notification texts used when the settings row has no templates
const (
	DefaultSubjectPending    = "Reserva recibida"
	DefaultTemplatePending   = "Hola %firstName%, hemos recibido tu reserva para %guests% personas el %date% a las %time%."
	DefaultSubjectConfirmed  = "Reserva confirmada"
	DefaultTemplateConfirmed = "Hola %firstName%, tu reserva en %restaurantName% está confirmada: %guests% personas el %date% a las %time%."
	DefaultSubjectCanceled   = "Reserva cancelada"
	DefaultTemplateCanceled  = "Hola %firstName%, tu reserva del %date% a las %time% ha sido cancelada."
)

// VenueSettings singleton-настройки заведения: реквизиты, SMTP и шаблоны писем
// Хранятся одной строкой в БД, читаются намного чаще, чем пишутся
type VenueSettings struct {
	ID             int64
	RestaurantName string
	Address        string
	LogoPath       string
	AdminEmail     string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	SubjectPending    string
	TemplatePending   string
	SubjectConfirmed  string
	TemplateConfirmed string
	SubjectCanceled   string
	TemplateCanceled  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SMTPConfigured returns true when the settings carry enough data to send mail
func (s *VenueSettings) SMTPConfigured() bool {
	return s.SMTPHost != "" && s.SMTPUser != "" && s.SMTPPass != ""
}

// SubjectFor returns the message subject for a reservation status,
// falling back to the default text when the template is not configured
func (s *VenueSettings) SubjectFor(status ReservationStatus) string {
	switch status {
	case StatusConfirmed:
		return defaultIfEmpty(s.SubjectConfirmed, DefaultSubjectConfirmed)
	case StatusCanceled:
		return defaultIfEmpty(s.SubjectCanceled, DefaultSubjectCanceled)
	default:
		return defaultIfEmpty(s.SubjectPending, DefaultSubjectPending)
	}
}

// TemplateFor returns the message body template for a reservation status
func (s *VenueSettings) TemplateFor(status ReservationStatus) string {
	switch status {
	case StatusConfirmed:
		return defaultIfEmpty(s.TemplateConfirmed, DefaultTemplateConfirmed)
	case StatusCanceled:
		return defaultIfEmpty(s.TemplateCanceled, DefaultTemplateCanceled)
	default:
		return defaultIfEmpty(s.TemplatePending, DefaultTemplatePending)
	}
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
