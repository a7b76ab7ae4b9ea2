package list_special_days

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/admin/schedule/special-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSpecialDays(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/schedule/special-days - Failed to list special days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule/special-days - Returned %d special days", len(result.SpecialDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
