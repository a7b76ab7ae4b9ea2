package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" || len(firstName) > domain.MaxNameLength {
		return fmt.Errorf("%w: first name is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxNameLength)
	}

	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" || len(lastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: last name is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, req.Email)
	}

	if req.Allergies != nil && len(*req.Allergies) > domain.MaxAllergiesLength {
		return fmt.Errorf("%w: allergies must be at most %d characters",
			ErrInvalidInput, domain.MaxAllergiesLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotNotInPast проверяет, что слот ещё не прошёл
func validateSlotNotInPast(date time.Time, slot types.TimeString, now time.Time) error {
	reqDay := dateOnly(date)
	today := dateOnly(now)

	if reqDay.Before(today) {
		return ErrSlotInPast
	}
	if reqDay.Equal(today) && slot.IsBefore(types.NewTimeString(now)) {
		return ErrSlotInPast
	}
	return nil
}

// resolveShift находит смену, которой принадлежит слот в действующем расписании
func resolveShift(schedule domain.EffectiveDaySchedule, intervalMinutes int, slot types.TimeString) (domain.Shift, bool) {
	for _, daySlot := range domain.GenerateDaySlots(schedule, intervalMinutes) {
		if daySlot.Time == slot {
			return daySlot.Shift, true
		}
	}
	return "", false
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
