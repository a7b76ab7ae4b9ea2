package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeWindow represents a service window within a day (start <= end)
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// IsZero returns true when neither bound is set
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Validate checks the HH:MM format of both bounds and their ordering
func (w TimeWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if w.End.IsBefore(w.Start) {
		return fmt.Errorf("time window end %s is before start %s", w.End, w.Start)
	}
	return nil
}

// WeeklyScheduleEntry describes one weekday of the weekly template
// Weekday follows time.Weekday numbering: 0=Sunday ... 6=Saturday
type WeeklyScheduleEntry struct {
	Weekday int
	IsOpen  bool
	Lunch   TimeWindow
	Dinner  TimeWindow
}

// WeeklySchedule is the full weekly template: exactly seven entries,
// one per weekday, no duplicates
type WeeklySchedule []WeeklyScheduleEntry

// Validate enforces the seven-entries-one-per-weekday invariant
// and window sanity for every open day
func (s WeeklySchedule) Validate() error {
	if len(s) != WeekdaysPerWeek {
		return fmt.Errorf("weekly schedule must have exactly %d entries, got %d", WeekdaysPerWeek, len(s))
	}

	seen := make(map[int]bool, WeekdaysPerWeek)
	for _, entry := range s {
		if entry.Weekday < 0 || entry.Weekday > 6 {
			return fmt.Errorf("invalid weekday id %d", entry.Weekday)
		}
		if seen[entry.Weekday] {
			return fmt.Errorf("duplicate weekday id %d", entry.Weekday)
		}
		seen[entry.Weekday] = true

		if !entry.IsOpen {
			continue
		}
		// Незаданное окно допустимо: смена в этот день не обслуживается
		if !entry.Lunch.IsZero() {
			if err := entry.Lunch.Validate(); err != nil {
				return fmt.Errorf("weekday %d lunch: %v", entry.Weekday, err)
			}
		}
		if !entry.Dinner.IsZero() {
			if err := entry.Dinner.Validate(); err != nil {
				return fmt.Errorf("weekday %d dinner: %v", entry.Weekday, err)
			}
		}
	}

	return nil
}

// EntryFor returns the template entry for the given date's weekday
func (s WeeklySchedule) EntryFor(date time.Time) (WeeklyScheduleEntry, bool) {
	weekday := int(date.Weekday())
	for _, entry := range s {
		if entry.Weekday == weekday {
			return entry, true
		}
	}
	return WeeklyScheduleEntry{}, false
}

// SpecialDayOverride is a per-date exception to the weekly template:
// a full closure, or replacement service windows for one or both shifts.
// A nil window inherits the weekly entry for that weekday; an explicitly
// empty window ("" / "") closes that single shift for the date
type SpecialDayOverride struct {
	ID       int64
	Date     time.Time
	IsClosed bool
	Lunch    *TimeWindow
	Dinner   *TimeWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDaySchedule is the resolved open/closed state and service
// windows for one concrete date, derived and never persisted
type EffectiveDaySchedule struct {
	Closed bool
	Lunch  *TimeWindow
	Dinner *TimeWindow
}

// ResolveDaySchedule сливает недельный шаблон с переопределением на дату.
// Переопределение всегда приоритетнее шаблона; незаполненные окна наследуются
// из недельной записи. Некорректное переопределение игнорируется (fail open
// к шаблону), вторым значением возвращается признак игнорирования, вызывающий
// обязан его залогировать.
func ResolveDaySchedule(entry WeeklyScheduleEntry, override *SpecialDayOverride) (EffectiveDaySchedule, bool) {
	if override != nil {
		if override.IsClosed {
			return EffectiveDaySchedule{Closed: true}, false
		}

		lunch, lunchOK := resolveShiftWindow(override.Lunch, entry.Lunch)
		dinner, dinnerOK := resolveShiftWindow(override.Dinner, entry.Dinner)

		if !lunchOK || !dinnerOK {
			// Кривое переопределение: откатываемся к шаблону
			resolved, _ := ResolveDaySchedule(entry, nil)
			return resolved, true
		}

		return EffectiveDaySchedule{Lunch: lunch, Dinner: dinner}, false
	}

	if !entry.IsOpen {
		return EffectiveDaySchedule{Closed: true}, false
	}

	return EffectiveDaySchedule{
		Lunch:  templateWindow(entry.Lunch),
		Dinner: templateWindow(entry.Dinner),
	}, false
}

// resolveShiftWindow выбирает окно одной смены из переопределения.
// nil - наследуем шаблон, пустое окно - смена закрыта на эту дату,
// некорректно заполненное окно - признак malformed (второе значение false)
func resolveShiftWindow(override *TimeWindow, template TimeWindow) (*TimeWindow, bool) {
	if override == nil {
		return templateWindow(template), true
	}
	if override.IsZero() {
		return nil, true
	}
	if err := override.Validate(); err != nil {
		return nil, false
	}
	w := *override
	return &w, true
}

// templateWindow возвращает окно шаблона или nil, если окно не задано/кривое
func templateWindow(w TimeWindow) *TimeWindow {
	if w.IsZero() || w.Validate() != nil {
		return nil
	}
	copied := w
	return &copied
}

// DefaultWeeklySchedule возвращает шаблон по умолчанию: воскресенье закрыто,
// остальные дни обед 13:00-15:30 и ужин 20:00-23:00
func DefaultWeeklySchedule() WeeklySchedule {
	lunch := TimeWindow{Start: "13:00", End: "15:30"}
	dinner := TimeWindow{Start: "20:00", End: "23:00"}

	schedule := make(WeeklySchedule, 0, WeekdaysPerWeek)
	for weekday := 0; weekday < WeekdaysPerWeek; weekday++ {
		entry := WeeklyScheduleEntry{Weekday: weekday}
		if weekday != int(time.Sunday) {
			entry.IsOpen = true
			entry.Lunch = lunch
			entry.Dinner = dinner
		}
		schedule = append(schedule, entry)
	}
	return schedule
}
