package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func mondayEntry() WeeklyScheduleEntry {
	return WeeklyScheduleEntry{
		Weekday: 1,
		IsOpen:  true,
		Lunch:   TimeWindow{Start: "13:00", End: "15:30"},
		Dinner:  TimeWindow{Start: "20:00", End: "23:00"},
	}
}

func TestResolveDaySchedule_NoOverride(t *testing.T) {
	resolved, ignored := ResolveDaySchedule(mondayEntry(), nil)

	assert.False(t, ignored)
	assert.False(t, resolved.Closed)
	require.NotNil(t, resolved.Lunch)
	require.NotNil(t, resolved.Dinner)
	assert.Equal(t, "13:00", resolved.Lunch.Start.String())
	assert.Equal(t, "23:00", resolved.Dinner.End.String())
}

func TestResolveDaySchedule_WeeklyClosed(t *testing.T) {
	entry := mondayEntry()
	entry.IsOpen = false

	resolved, ignored := ResolveDaySchedule(entry, nil)

	assert.False(t, ignored)
	assert.True(t, resolved.Closed)
	assert.Nil(t, resolved.Lunch)
	assert.Nil(t, resolved.Dinner)
}

func TestResolveDaySchedule_OverrideClosesDay(t *testing.T) {
	override := &SpecialDayOverride{IsClosed: true}

	resolved, ignored := ResolveDaySchedule(mondayEntry(), override)

	assert.False(t, ignored)
	assert.True(t, resolved.Closed)
}

func TestResolveDaySchedule_OverrideReplacesWindows(t *testing.T) {
	override := &SpecialDayOverride{
		Lunch:  &TimeWindow{Start: "12:00", End: "14:00"},
		Dinner: &TimeWindow{Start: "19:00", End: "21:00"},
	}

	resolved, ignored := ResolveDaySchedule(mondayEntry(), override)

	assert.False(t, ignored)
	require.NotNil(t, resolved.Lunch)
	require.NotNil(t, resolved.Dinner)
	assert.Equal(t, "12:00", resolved.Lunch.Start.String())
	assert.Equal(t, "21:00", resolved.Dinner.End.String())
}

func TestResolveDaySchedule_UnsetShiftInheritsTemplate(t *testing.T) {
	override := &SpecialDayOverride{
		Lunch: &TimeWindow{Start: "12:00", End: "14:00"},
		// Dinner не задан - наследуется из шаблона
	}

	resolved, ignored := ResolveDaySchedule(mondayEntry(), override)

	assert.False(t, ignored)
	require.NotNil(t, resolved.Dinner)
	assert.Equal(t, "20:00", resolved.Dinner.Start.String())
	assert.Equal(t, "23:00", resolved.Dinner.End.String())
}

func TestResolveDaySchedule_EmptyWindowClosesSingleShift(t *testing.T) {
	override := &SpecialDayOverride{
		Lunch: &TimeWindow{}, // обед закрыт на эту дату
	}

	resolved, ignored := ResolveDaySchedule(mondayEntry(), override)

	assert.False(t, ignored)
	assert.False(t, resolved.Closed)
	assert.Nil(t, resolved.Lunch)
	require.NotNil(t, resolved.Dinner)
	assert.Equal(t, "20:00", resolved.Dinner.Start.String())
}

func TestResolveDaySchedule_MalformedOverrideFallsOpenToTemplate(t *testing.T) {
	override := &SpecialDayOverride{
		Lunch: &TimeWindow{Start: "25:99", End: "14:00"},
	}

	resolved, ignored := ResolveDaySchedule(mondayEntry(), override)

	assert.True(t, ignored)
	require.NotNil(t, resolved.Lunch)
	assert.Equal(t, "13:00", resolved.Lunch.Start.String())
}

func TestWeeklySchedule_Validate(t *testing.T) {
	valid := make(WeeklySchedule, 0, WeekdaysPerWeek)
	for wd := 0; wd < WeekdaysPerWeek; wd++ {
		entry := mondayEntry()
		entry.Weekday = wd
		valid = append(valid, entry)
	}
	assert.NoError(t, valid.Validate())

	short := valid[:6]
	assert.Error(t, short.Validate())

	duplicated := make(WeeklySchedule, len(valid))
	copy(duplicated, valid)
	duplicated[6].Weekday = 0
	assert.Error(t, duplicated.Validate())

	badWindow := make(WeeklySchedule, len(valid))
	copy(badWindow, valid)
	badWindow[3].Lunch = TimeWindow{Start: "15:00", End: "13:00"}
	assert.Error(t, badWindow.Validate())
}

func TestWeeklySchedule_EntryFor(t *testing.T) {
	schedule := make(WeeklySchedule, 0, WeekdaysPerWeek)
	for wd := 0; wd < WeekdaysPerWeek; wd++ {
		entry := mondayEntry()
		entry.Weekday = wd
		entry.IsOpen = wd != 0 // воскресенье закрыто
		schedule = append(schedule, entry)
	}

	// 2025-06-02 - понедельник
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entry, ok := schedule.EntryFor(monday)
	require.True(t, ok)
	assert.Equal(t, 1, entry.Weekday)
	assert.True(t, entry.IsOpen)

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entry, ok = schedule.EntryFor(sunday)
	require.True(t, ok)
	assert.False(t, entry.IsOpen)
}

func TestTimeWindow_Validate(t *testing.T) {
	assert.NoError(t, TimeWindow{Start: "13:00", End: "15:30"}.Validate())
	assert.NoError(t, TimeWindow{Start: "13:00", End: "13:00"}.Validate())
	assert.Error(t, TimeWindow{Start: "15:30", End: "13:00"}.Validate())
	assert.Error(t, TimeWindow{Start: "foo", End: "15:30"}.Validate())
}

func TestResolveDaySchedule_OverridePrecedenceFieldByField(t *testing.T) {
	entry := mondayEntry()
	override := &SpecialDayOverride{
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Dinner: ptr.Ptr(TimeWindow{Start: "21:00", End: "23:30"}),
	}

	resolved, ignored := ResolveDaySchedule(entry, override)

	assert.False(t, ignored)
	require.NotNil(t, resolved.Lunch)
	require.NotNil(t, resolved.Dinner)
	// Обед из шаблона, ужин из переопределения
	assert.Equal(t, "13:00", resolved.Lunch.Start.String())
	assert.Equal(t, "21:00", resolved.Dinner.Start.String())
}
