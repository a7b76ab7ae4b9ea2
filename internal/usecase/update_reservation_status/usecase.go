package update_reservation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case для смены статуса бронирования админом
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса.
// Повторная установка того же статуса не шлёт гостю второе письмо.
// Отмена брони освобождает вместимость слота для новых броней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservationStatus: id=%s, status=%s", req.ID, req.Status)

	// 1. Валидация входных данных
	if req.ID == "" {
		uc.logger.Warn("UpdateReservationStatus: empty reservation id")
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	status := domain.ReservationStatus(req.Status)
	if !status.IsValid() {
		uc.logger.Warn("UpdateReservationStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	// 2. Получаем бронирование
	res, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservationStatus: reservation id=%s not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservationStatus: failed to get reservation id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Тот же статус - ничего не меняем и не уведомляем
	if res.Status == status {
		uc.logger.Info("UpdateReservationStatus: reservation id=%s already has status=%s", req.ID, status)
		return fromDomain(res, false), nil
	}

	// 4. Обновляем статус
	if err := uc.reservationRepo.UpdateStatus(ctx, req.ID, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservationStatus: reservation id=%s disappeared", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservationStatus: failed to update reservation id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	res.Status = status

	uc.logger.Info("UpdateReservationStatus: reservation id=%s status changed to %s", req.ID, status)

	// 5. Уведомляем гостя о новом статусе
	uc.notifier.NotifyAsync(res)

	return fromDomain(res, true), nil
}
