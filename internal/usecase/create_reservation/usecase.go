package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleService ScheduleService
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	slotCapacity        int
	slotIntervalMinutes int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleService ScheduleService,
	notifier Notifier,
	txManager TransactionManager,
	slotCapacity int,
	slotIntervalMinutes int,
	logger Logger,
) *UseCase {
	if slotCapacity <= 0 {
		slotCapacity = domain.DefaultSlotCapacity
	}
	if slotIntervalMinutes <= 0 {
		slotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	return &UseCase{
		reservationRepo:     reservationRepo,
		scheduleService:     scheduleService,
		notifier:            notifier,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
		slotCapacity:        slotCapacity,
		slotIntervalMinutes: slotIntervalMinutes,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции - конкурирующие запросы не могут переполнить слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, guests=%d, email=%s",
		req.Date.Format(domain.DateFormat), req.TimeSlot, req.Guests, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Повтор по ключу идемпотентности возвращает уже созданную бронь
	if req.IdempotencyKey != nil {
		existing, err := uc.findByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			uc.logger.Info("CreateReservation: returning existing reservation id=%s for idempotency key", existing.ID)
			return fromDomain(existing, true), nil
		}
	}

	// 4. Вычисляем действующее расписание на дату
	schedule, err := uc.scheduleService.ResolveDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to resolve day schedule for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to resolve day schedule: %v", ErrInternal, err)
	}

	// 5. Закрытый день или слот вне действующих окон
	if schedule.Closed {
		uc.logger.Warn("CreateReservation: venue is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotInSchedule
	}

	shift, ok := resolveShift(schedule, uc.slotIntervalMinutes, req.TimeSlot)
	if !ok {
		uc.logger.Warn("CreateReservation: slot %s is not in schedule for date=%s",
			req.TimeSlot, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotInSchedule
	}

	// 6. Прошедший слот бронировать нельзя
	if err := validateSlotNotInPast(req.Date, req.TimeSlot, now); err != nil {
		uc.logger.Warn("CreateReservation: slot %s on %s is in the past",
			req.TimeSlot, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	reservation := uc.buildReservation(req, shift)

	// 7. Проверка вместимости и вставка атомарно
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем активные брони даты и пересчитываем занятость слота
		active, err := uc.reservationRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			// Вторая %w сохраняет ошибку драйвера: менеджер транзакций
			// распознает по ней конфликт сериализации и повторяет попытку
			return fmt.Errorf("%w: failed to get active reservations: %w", ErrInternal, err)
		}

		occupied := 0
		for _, res := range active {
			if res.TimeSlot == req.TimeSlot {
				occupied++
			}
		}
		if occupied >= uc.slotCapacity {
			return ErrCapacityExceeded
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		return uc.handleCreateError(ctx, req, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, date=%s, time=%s",
		created.ID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 8. Уведомления после фиксации транзакции, их сбой брони не отменяет
	uc.notifier.NotifyAsync(created)

	return fromDomain(created, false), nil
}

// buildReservation собирает доменную бронь со сгенерированным UUID
func (uc *UseCase) buildReservation(req *Request, shift domain.Shift) *domain.Reservation {
	return &domain.Reservation{
		ID:             uuid.NewString(),
		Date:           dateOnly(req.Date),
		TimeSlot:       req.TimeSlot,
		Shift:          shift,
		Guests:         req.Guests,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          req.Email,
		Phone:          req.Phone,
		Allergies:      req.Allergies,
		Notes:          req.Notes,
		Status:         domain.StatusPending,
		IdempotencyKey: req.IdempotencyKey,
	}
}

// handleCreateError разбирает ошибку транзакции создания.
// Гонка по ключу идемпотентности превращается в возврат существующей брони
func (uc *UseCase) handleCreateError(ctx context.Context, req *Request, err error) (*Response, error) {
	if errors.Is(err, ErrCapacityExceeded) {
		uc.logger.Warn("CreateReservation: slot %s on %s is full",
			req.TimeSlot, req.Date.Format(domain.DateFormat))
		return nil, ErrCapacityExceeded
	}

	if errors.Is(err, reservationRepo.ErrDuplicateIdempotencyKey) && req.IdempotencyKey != nil {
		existing, lookupErr := uc.findByIdempotencyKey(ctx, *req.IdempotencyKey)
		if lookupErr == nil && existing != nil {
			uc.logger.Info("CreateReservation: concurrent duplicate, returning reservation id=%s", existing.ID)
			return fromDomain(existing, true), nil
		}
	}

	if errors.Is(err, ErrInternal) {
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
	return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
}

// findByIdempotencyKey ищет бронь по ключу; отсутствие ключа - не ошибка
func (uc *UseCase) findByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error) {
	existing, err := uc.reservationRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateReservation: idempotency lookup failed: %v", err)
		return nil, fmt.Errorf("%w: idempotency lookup failed: %v", ErrInternal, err)
	}
	return existing, nil
}
