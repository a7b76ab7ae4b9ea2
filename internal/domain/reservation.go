package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCanceled  ReservationStatus = "CANCELED"
)

// IsValid returns true for one of the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Reservation represents a table reservation at the venue
type Reservation struct {
	ID        string // opaque UUID
	Date      time.Time
	TimeSlot  types.TimeString
	Shift     Shift
	Guests    int
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Allergies *string
	Notes     *string
	Status    ReservationStatus

	// IdempotencyKey защищает от повторной отправки одной и той же брони
	// (повтор запроса после таймаута возвращает уже созданную запись)
	IdempotencyKey *string

	EmailSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, пока бронь занимает вместимость слота
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCanceled
}

// ReservationsFilter фильтр для выборки бронирований админом
type ReservationsFilter struct {
	Date   *time.Time         // Конкретная дата (опционально)
	Status *ReservationStatus // Фильтр по статусу (опционально)
}
