package settings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
)

// Service сервис для работы с настройками заведения
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает настройки заведения.
// Пока админ их не сохранил, возвращаются пустые настройки
// с дефолтными текстами писем
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: venue settings not configured yet, returning defaults")
			return models.FromDomainSettings(&domain.VenueSettings{}), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(stored), nil
}

// Update полностью заменяет настройки заведения
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.settingsRepo.Save(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: venue settings saved, restaurant=%s", saved.RestaurantName)
	return models.FromDomainSettings(saved), nil
}

func validateRequest(req *models.UpdateSettingsRequest) error {
	if req.AdminEmail != "" {
		if _, err := mail.ParseAddress(req.AdminEmail); err != nil {
			return fmt.Errorf("invalid admin email %q", req.AdminEmail)
		}
	}
	if req.SMTPPort < 0 || req.SMTPPort > 65535 {
		return fmt.Errorf("invalid smtp port %d", req.SMTPPort)
	}
	return nil
}
