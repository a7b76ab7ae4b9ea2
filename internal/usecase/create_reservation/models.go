package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      time.Time        // Дата без времени
	TimeSlot  types.TimeString // Время слота (например, "13:30")
	Guests    int              // Количество гостей
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Allergies *string
	Notes     *string

	// IdempotencyKey защищает от дублей при сетевых повторах (опционально)
	IdempotencyKey *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	Date      time.Time
	TimeSlot  types.TimeString
	Shift     domain.Shift
	Guests    int
	Status    domain.ReservationStatus
	CreatedAt time.Time

	// AlreadyExists бронь была создана раньше и возвращена по ключу идемпотентности
	AlreadyExists bool
}

// fromDomain собирает ответ из доменного бронирования
func fromDomain(res *domain.Reservation, alreadyExists bool) *Response {
	return &Response{
		ID:            res.ID,
		Date:          res.Date,
		TimeSlot:      res.TimeSlot,
		Shift:         res.Shift,
		Guests:        res.Guests,
		Status:        res.Status,
		CreatedAt:     res.CreatedAt,
		AlreadyExists: alreadyExists,
	}
}
