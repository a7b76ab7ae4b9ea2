package update_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	ID     string // UUID бронирования
	Status string // Новый статус: PENDING, CONFIRMED или CANCELED
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        string
	Date      time.Time
	TimeSlot  types.TimeString
	Shift     domain.Shift
	Guests    int
	Status    domain.ReservationStatus
	UpdatedAt time.Time

	// StatusChanged false, когда запрошенный статус уже был установлен
	StatusChanged bool
}

// fromDomain собирает ответ из доменного бронирования
func fromDomain(res *domain.Reservation, changed bool) *Response {
	return &Response{
		ID:            res.ID,
		Date:          res.Date,
		TimeSlot:      res.TimeSlot,
		Shift:         res.Shift,
		Guests:        res.Guests,
		Status:        res.Status,
		UpdatedAt:     res.UpdatedAt,
		StatusChanged: changed,
	}
}
