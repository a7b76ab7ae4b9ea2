package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotInSchedule  = "выбранный слот не входит в расписание на эту дату"
	msgSlotInPast         = "выбранный слот уже прошёл"
	msgCapacityExceeded   = "в выбранном слоте не осталось мест"
	msgInvalidInput       = "некорректные данные бронирования"
)

// idempotencyKeyHeader повтор запроса с тем же ключом возвращает созданную бронь
const idempotencyKeyHeader = "Idempotency-Key"

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var idempotencyKey *string
	if key := r.Header.Get(idempotencyKeyHeader); key != "" {
		idempotencyKey = ptr.Ptr(key)
	}

	useCaseReq, err := req.ToUseCaseRequest(idempotencyKey)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrSlotNotInSchedule):
			h.logger.Warn("POST /reservations - Slot not in schedule: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgSlotNotInSchedule)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot in past: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
