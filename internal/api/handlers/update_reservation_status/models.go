package update_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	updateStatus "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // PENDING, CONFIRMED или CANCELED
}

// ReservationStatusResponse HTTP response model
type ReservationStatusResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	Shift         string `json:"shift"`
	Guests        int    `json:"guests"`
	Status        string `json:"status"`
	StatusChanged bool   `json:"statusChanged"`
	UpdatedAt     string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *updateStatus.Response) *ReservationStatusResponse {
	return &ReservationStatusResponse{
		ID:            result.ID,
		Date:          result.Date.Format(domain.DateFormat),
		TimeSlot:      result.TimeSlot.String(),
		Shift:         string(result.Shift),
		Guests:        result.Guests,
		Status:        string(result.Status),
		StatusChanged: result.StatusChanged,
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	}
}
