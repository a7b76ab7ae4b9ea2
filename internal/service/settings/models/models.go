package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на полную замену настроек заведения.
// Запись перезаписывает все поля: последний записавший выигрывает
type UpdateSettingsRequest struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	LogoPath       string `json:"logoPath"`
	AdminEmail     string `json:"adminEmail"`

	SMTPHost string `json:"smtpHost"`
	SMTPPort int    `json:"smtpPort"`
	SMTPUser string `json:"smtpUser"`
	SMTPPass string `json:"smtpPass"`

	SubjectPending    string `json:"subjectPending"`
	TemplatePending   string `json:"templatePending"`
	SubjectConfirmed  string `json:"subjectConfirmed"`
	TemplateConfirmed string `json:"templateConfirmed"`
	SubjectCanceled   string `json:"subjectCanceled"`
	TemplateCanceled  string `json:"templateCanceled"`
}

// ToDomain конвертирует запрос в доменные настройки
func (r *UpdateSettingsRequest) ToDomain() *domain.VenueSettings {
	return &domain.VenueSettings{
		RestaurantName: r.RestaurantName,
		Address:        r.Address,
		LogoPath:       r.LogoPath,
		AdminEmail:     r.AdminEmail,

		SMTPHost: r.SMTPHost,
		SMTPPort: r.SMTPPort,
		SMTPUser: r.SMTPUser,
		SMTPPass: r.SMTPPass,

		SubjectPending:    r.SubjectPending,
		TemplatePending:   r.TemplatePending,
		SubjectConfirmed:  r.SubjectConfirmed,
		TemplateConfirmed: r.TemplateConfirmed,
		SubjectCanceled:   r.SubjectCanceled,
		TemplateCanceled:  r.TemplateCanceled,
	}
}

// Response модели

// SettingsResponse настройки заведения
type SettingsResponse struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	LogoPath       string `json:"logoPath"`
	AdminEmail     string `json:"adminEmail"`

	SMTPHost       string `json:"smtpHost"`
	SMTPPort       int    `json:"smtpPort"`
	SMTPUser       string `json:"smtpUser"`
	SMTPConfigured bool   `json:"smtpConfigured"`

	SubjectPending    string `json:"subjectPending"`
	TemplatePending   string `json:"templatePending"`
	SubjectConfirmed  string `json:"subjectConfirmed"`
	TemplateConfirmed string `json:"templateConfirmed"`
	SubjectCanceled   string `json:"subjectCanceled"`
	TemplateCanceled  string `json:"templateCanceled"`
}

// FromDomainSettings конвертирует доменные настройки в ответ.
// Пароль SMTP наружу не отдаётся, вместо него флаг smtpConfigured
func FromDomainSettings(s *domain.VenueSettings) *SettingsResponse {
	return &SettingsResponse{
		RestaurantName: s.RestaurantName,
		Address:        s.Address,
		LogoPath:       s.LogoPath,
		AdminEmail:     s.AdminEmail,

		SMTPHost:       s.SMTPHost,
		SMTPPort:       s.SMTPPort,
		SMTPUser:       s.SMTPUser,
		SMTPConfigured: s.SMTPConfigured(),

		SubjectPending:    s.SubjectPending,
		TemplatePending:   s.TemplatePending,
		SubjectConfirmed:  s.SubjectConfirmed,
		TemplateConfirmed: s.TemplateConfirmed,
		SubjectCanceled:   s.SubjectCanceled,
		TemplateCanceled:  s.TemplateCanceled,
	}
}
