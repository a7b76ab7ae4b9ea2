package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date      string  `json:"date"`     // "2025-06-14"
	TimeSlot  string  `json:"timeSlot"` // "13:30"
	Guests    int     `json:"guests"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Allergies *string `json:"allergies,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Shift     string `json:"shift"`
	Guests    int    `json:"guests"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(idempotencyKey *string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:           date,
		TimeSlot:       timeSlot,
		Guests:         r.Guests,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Allergies:      r.Allergies,
		Notes:          r.Notes,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        result.ID,
		Date:      result.Date.Format(domain.DateFormat),
		TimeSlot:  result.TimeSlot.String(),
		Shift:     string(result.Shift),
		Guests:    result.Guests,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
	}
}
