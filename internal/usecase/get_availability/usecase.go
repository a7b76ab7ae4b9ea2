package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Сообщения гостю для дней без доступных слотов
const (
	msgClosed   = "El restaurante está cerrado este día"
	msgDegraded = "No se pudo comprobar la disponibilidad, inténtalo de nuevo más tarde"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleService ScheduleService
	timeProvider    TimeProvider
	logger          Logger

	slotCapacity        int
	slotIntervalMinutes int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleService ScheduleService,
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
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
		slotCapacity:        slotCapacity,
		slotIntervalMinutes: slotIntervalMinutes,
	}
}

// Execute выполняет use case получения доступности.
// При сбое хранилища не угадывает: отдаёт день как закрытый с пояснением,
// чтобы гость не забронировал слот, занятость которого неизвестна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Вычисляем действующее расписание на дату
	schedule, err := uc.scheduleService.ResolveDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve day schedule for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return uc.degradedResponse(req.Date), nil
	}

	// 4. Закрытый день - пустой список слотов
	if schedule.Closed {
		uc.logger.Info("GetAvailability: venue is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:    req.Date,
			Closed:  true,
			Message: msgClosed,
			Slots:   []Slot{},
		}, nil
	}

	// 5. Получаем занятость слотов активными бронями
	occupancy, err := uc.reservationRepo.CountActiveByTimeSlot(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count reservations for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return uc.degradedResponse(req.Date), nil
	}

	// 6. Собираем слоты с занятостью и фильтром прошедшего времени
	slots := buildSlots(schedule, uc.slotIntervalMinutes, uc.slotCapacity, occupancy, req.Date, now)

	uc.logger.Info("GetAvailability: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// degradedResponse ответ при сбое хранилища: день показывается закрытым,
// бронирование по неизвестной занятости не предлагается
func (uc *UseCase) degradedResponse(date time.Time) *Response {
	return &Response{
		Date:    date,
		Closed:  true,
		Message: msgDegraded,
		Slots:   []Slot{},
	}
}
