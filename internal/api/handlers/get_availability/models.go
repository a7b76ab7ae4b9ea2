package get_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date    string         `json:"date"`
	Closed  bool           `json:"closed"`
	Message string         `json:"message,omitempty"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse один слот с состоянием занятости
type SlotResponse struct {
	Time      string `json:"time"`
	Shift     string `json:"shift"`
	Occupied  int    `json:"occupied"`
	Capacity  int    `json:"capacity"`
	IsPast    bool   `json:"isPast"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, SlotResponse{
			Time:      slot.Time.String(),
			Shift:     slot.Shift,
			Occupied:  slot.Occupied,
			Capacity:  slot.Capacity,
			IsPast:    slot.IsPast,
			Available: slot.Available,
		})
	}
	return &AvailabilityResponse{
		Date:    result.Date.Format(domain.DateFormat),
		Closed:  result.Closed,
		Message: result.Message,
		Slots:   slots,
	}
}
