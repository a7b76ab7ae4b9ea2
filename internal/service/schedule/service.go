package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

// Service сервис для работы с расписанием заведения:
// недельный шаблон, переопределения на даты и их слияние
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeekly возвращает недельный шаблон расписания.
// Если шаблон в базе отсутствует, возвращается дефолтный
func (s *Service) GetWeekly(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	schedule, err := s.loadWeekly(ctx)
	if err != nil {
		s.logger.Error("GetWeekly: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeekly - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWeeklySchedule(schedule), nil
}

// UpdateWeekly полностью заменяет недельный шаблон
func (s *Service) UpdateWeekly(ctx context.Context, req *models.UpdateWeeklyScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	schedule := req.ToDomain()
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("UpdateWeekly: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.ReplaceWeekly(ctx, schedule); err != nil {
		s.logger.Error("UpdateWeekly: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekly: weekly schedule replaced")
	return models.FromDomainWeeklySchedule(schedule), nil
}

// ListSpecialDays возвращает все переопределения на даты
func (s *Service) ListSpecialDays(ctx context.Context) (*models.SpecialDayListResponse, error) {
	overrides, err := s.scheduleRepo.ListSpecialDays(ctx)
	if err != nil {
		s.logger.Error("ListSpecialDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpecialDays - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSpecialDayList(overrides), nil
}

// UpsertSpecialDay создает или заменяет переопределение на дату
func (s *Service) UpsertSpecialDay(ctx context.Context, req *models.UpsertSpecialDayRequest) (*models.SpecialDayResponse, error) {
	override, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpsertSpecialDay: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateOverrideWindows(override); err != nil {
		s.logger.Warn("UpsertSpecialDay: validation failed for date=%s: %v",
			override.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.scheduleRepo.UpsertSpecialDay(ctx, override)
	if err != nil {
		s.logger.Error("UpsertSpecialDay: repository error for date=%s: %v",
			override.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: UpsertSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSpecialDay: saved override for date=%s, closed=%t",
		saved.Date.Format(domain.DateFormat), saved.IsClosed)
	return models.FromDomainSpecialDay(saved), nil
}

// DeleteSpecialDay удаляет переопределение на дату
func (s *Service) DeleteSpecialDay(ctx context.Context, dateStr string) error {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("DeleteSpecialDay: invalid date=%s", dateStr)
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, dateStr)
	}

	if err := s.scheduleRepo.DeleteSpecialDay(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrSpecialDayNotFound) {
			s.logger.Warn("DeleteSpecialDay: override for date=%s not found", dateStr)
			return ErrSpecialDayNotFound
		}
		s.logger.Error("DeleteSpecialDay: repository error for date=%s: %v", dateStr, err)
		return fmt.Errorf("%w: DeleteSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDay: removed override for date=%s", dateStr)
	return nil
}

// ResolveDay вычисляет действующее расписание на конкретную дату:
// недельный шаблон плюс переопределение, если оно есть.
// Кривое переопределение игнорируется с предупреждением в логе
func (s *Service) ResolveDay(ctx context.Context, date time.Time) (domain.EffectiveDaySchedule, error) {
	weekly, err := s.loadWeekly(ctx)
	if err != nil {
		s.logger.Error("ResolveDay: failed to load weekly schedule: %v", err)
		return domain.EffectiveDaySchedule{}, fmt.Errorf("%w: ResolveDay - repository error: %v", ErrInternal, err)
	}

	entry, ok := weekly.EntryFor(date)
	if !ok {
		// Шаблон без записи на этот день недели считаем закрытым днём
		s.logger.Warn("ResolveDay: no weekly entry for weekday=%d, treating as closed", int(date.Weekday()))
		return domain.EffectiveDaySchedule{Closed: true}, nil
	}

	override, err := s.scheduleRepo.GetSpecialDay(ctx, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrSpecialDayNotFound) {
		s.logger.Error("ResolveDay: failed to load special day for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return domain.EffectiveDaySchedule{}, fmt.Errorf("%w: ResolveDay - repository error: %v", ErrInternal, err)
	}

	resolved, ignored := domain.ResolveDaySchedule(entry, override)
	if ignored {
		s.logger.Warn("ResolveDay: malformed override for date=%s ignored, falling back to weekly template",
			date.Format(domain.DateFormat))
	}
	return resolved, nil
}

// validateOverrideWindows проверяет окна переопределения перед сохранением.
// Пустое окно допустимо - так закрывают одну смену на дату
func validateOverrideWindows(override *domain.SpecialDayOverride) error {
	if override.IsClosed {
		return nil
	}
	if override.Lunch != nil && !override.Lunch.IsZero() {
		if err := override.Lunch.Validate(); err != nil {
			return fmt.Errorf("lunch window: %v", err)
		}
	}
	if override.Dinner != nil && !override.Dinner.IsZero() {
		if err := override.Dinner.Validate(); err != nil {
			return fmt.Errorf("dinner window: %v", err)
		}
	}
	return nil
}

// loadWeekly читает недельный шаблон, подставляя дефолтный при его отсутствии
func (s *Service) loadWeekly(ctx context.Context) (domain.WeeklySchedule, error) {
	weekly, err := s.scheduleRepo.GetWeekly(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWeeklyScheduleNotFound) {
			s.logger.Warn("loadWeekly: weekly schedule not configured, using defaults")
			return domain.DefaultWeeklySchedule(), nil
		}
		return nil, err
	}
	return weekly, nil
}
