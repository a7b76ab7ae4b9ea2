package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// buildSlots собирает слоты дня с занятостью и признаком прошедшего времени.
// Слот доступен, пока он не в прошлом и в нём осталась вместимость
func buildSlots(
	schedule domain.EffectiveDaySchedule,
	intervalMinutes int,
	capacity int,
	occupancy map[types.TimeString]int,
	requestDate time.Time,
	now time.Time,
) []Slot {
	daySlots := domain.GenerateDaySlots(schedule, intervalMinutes)

	slots := make([]Slot, 0, len(daySlots))
	for _, slot := range daySlots {
		occupied := occupancy[slot.Time]
		past := isSlotInPast(requestDate, slot.Time, now)

		slots = append(slots, Slot{
			Time:      slot.Time,
			Shift:     string(slot.Shift),
			Occupied:  occupied,
			Capacity:  capacity,
			IsPast:    past,
			Available: !past && occupied < capacity,
		})
	}
	return slots
}

// isSlotInPast решает, прошёл ли слот: вся прошедшая дата в прошлом,
// на сегодня в прошлом слоты раньше текущего времени, будущее не бывает прошлым
func isSlotInPast(requestDate time.Time, slotTime types.TimeString, now time.Time) bool {
	reqDay := dateOnly(requestDate)
	today := dateOnly(now)

	if reqDay.Before(today) {
		return true
	}
	if reqDay.After(today) {
		return false
	}
	return slotTime.IsBefore(types.NewTimeString(now))
}
