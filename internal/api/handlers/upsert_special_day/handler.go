package upsert_special_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpecialDay  = "некорректное переопределение расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule/special-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertSpecialDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule/special-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertSpecialDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/schedule/special-days - Invalid special day: date=%s, error=%v",
				req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidSpecialDay)

		default:
			h.logger.Error("POST /admin/schedule/special-days - Failed to upsert special day: date=%s, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedule/special-days - Special day saved: date=%s, closed=%t",
		result.Date, result.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
