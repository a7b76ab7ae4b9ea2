package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Shift represents one of the two service periods per day
type Shift string

const (
	ShiftLunch  Shift = "LUNCH"
	ShiftDinner Shift = "DINNER"
)

// IsValid returns true for one of the known shifts
func (s Shift) IsValid() bool {
	return s == ShiftLunch || s == ShiftDinner
}

// Slot is a bookable point in time within a shift's window
// Generated on demand, never stored
type Slot struct {
	Time  types.TimeString
	Shift Shift
}

// AvailableSlot is a Slot with its computed occupancy state
type AvailableSlot struct {
	Time      types.TimeString
	Shift     Shift
	Occupied  int
	Capacity  int
	IsPast    bool
	Available bool
}

// GenerateWindowSlots генерирует упорядоченные времена слотов внутри окна
// с фиксированным шагом, включая обе границы (start == end даёт один слот).
// Чистая функция: пересчитывается при каждом вызове.
// Окно с end < start даёт пустой результат; при превышении MaxSlotsPerWindow
// генерация обрывается и возвращаются уже сгенерированные слоты -
// защита от зависания на кривой конфигурации окна
func GenerateWindowSlots(window TimeWindow, intervalMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if intervalMinutes <= 0 {
		return slots
	}
	if window.Start.Validate() != nil || window.End.Validate() != nil {
		return slots
	}
	if window.End.IsBefore(window.Start) {
		return slots
	}

	current := window.Start
	for !current.IsAfter(window.End) {
		slots = append(slots, current)
		if len(slots) >= MaxSlotsPerWindow {
			break
		}

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			break
		}
		// Перенос через полночь означает выход за границы окна
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots
}

// GenerateDaySlots генерирует все слоты дня для резолвленного расписания:
// сначала обеденные (по возрастанию), затем ужин (по возрастанию)
func GenerateDaySlots(schedule EffectiveDaySchedule, intervalMinutes int) []Slot {
	slots := make([]Slot, 0)

	if schedule.Closed {
		return slots
	}

	if schedule.Lunch != nil {
		for _, t := range GenerateWindowSlots(*schedule.Lunch, intervalMinutes) {
			slots = append(slots, Slot{Time: t, Shift: ShiftLunch})
		}
	}
	if schedule.Dinner != nil {
		for _, t := range GenerateWindowSlots(*schedule.Dinner, intervalMinutes) {
			slots = append(slots, Slot{Time: t, Shift: ShiftDinner})
		}
	}

	return slots
}

// DayContainsSlot проверяет, что пара (время, смена) принадлежит множеству
// слотов, генерируемых для данного расписания дня
func DayContainsSlot(schedule EffectiveDaySchedule, intervalMinutes int, slotTime types.TimeString, shift Shift) bool {
	for _, slot := range GenerateDaySlots(schedule, intervalMinutes) {
		if slot.Time == slotTime && slot.Shift == shift {
			return true
		}
	}
	return false
}
