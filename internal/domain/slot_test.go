package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestGenerateWindowSlots_InclusiveEndpoints(t *testing.T) {
	slots := GenerateWindowSlots(TimeWindow{Start: "13:00", End: "15:30"}, 30)

	expected := []types.TimeString{"13:00", "13:30", "14:00", "14:30", "15:00", "15:30"}
	assert.Equal(t, expected, slots)
}

func TestGenerateWindowSlots_EndNotAlignedWithStep(t *testing.T) {
	slots := GenerateWindowSlots(TimeWindow{Start: "13:00", End: "15:20"}, 30)

	// 15:20 не попадает на шаг - последний слот 15:00
	expected := []types.TimeString{"13:00", "13:30", "14:00", "14:30", "15:00"}
	assert.Equal(t, expected, slots)
}

func TestGenerateWindowSlots_StartEqualsEnd(t *testing.T) {
	slots := GenerateWindowSlots(TimeWindow{Start: "20:00", End: "20:00"}, 30)

	assert.Equal(t, []types.TimeString{"20:00"}, slots)
}

func TestGenerateWindowSlots_EndBeforeStart(t *testing.T) {
	slots := GenerateWindowSlots(TimeWindow{Start: "15:00", End: "13:00"}, 30)

	assert.Empty(t, slots)
}

func TestGenerateWindowSlots_NonPositiveInterval(t *testing.T) {
	assert.Empty(t, GenerateWindowSlots(TimeWindow{Start: "13:00", End: "15:00"}, 0))
	assert.Empty(t, GenerateWindowSlots(TimeWindow{Start: "13:00", End: "15:00"}, -30))
}

func TestGenerateWindowSlots_SafetyCeiling(t *testing.T) {
	// Окно в целые сутки с шагом в 1 минуту упёрлось бы в 1381 слот
	slots := GenerateWindowSlots(TimeWindow{Start: "00:00", End: "23:00"}, 1)

	assert.Len(t, slots, MaxSlotsPerWindow)
}

func TestGenerateWindowSlots_Restartable(t *testing.T) {
	window := TimeWindow{Start: "13:00", End: "15:30"}

	first := GenerateWindowSlots(window, 30)
	second := GenerateWindowSlots(window, 30)

	assert.Equal(t, first, second)
}

func TestGenerateDaySlots_LunchBeforeDinner(t *testing.T) {
	schedule := EffectiveDaySchedule{
		Lunch:  &TimeWindow{Start: "13:00", End: "14:00"},
		Dinner: &TimeWindow{Start: "20:00", End: "21:00"},
	}

	slots := GenerateDaySlots(schedule, 30)

	require.Len(t, slots, 6)
	assert.Equal(t, Slot{Time: "13:00", Shift: ShiftLunch}, slots[0])
	assert.Equal(t, Slot{Time: "14:00", Shift: ShiftLunch}, slots[2])
	assert.Equal(t, Slot{Time: "20:00", Shift: ShiftDinner}, slots[3])
	assert.Equal(t, Slot{Time: "21:00", Shift: ShiftDinner}, slots[5])

	// Слоты каждой смены отсортированы по возрастанию
	for i := 1; i < len(slots); i++ {
		if slots[i].Shift == slots[i-1].Shift {
			assert.True(t, slots[i-1].Time.IsBefore(slots[i].Time))
		}
	}
}

func TestGenerateDaySlots_ClosedDay(t *testing.T) {
	slots := GenerateDaySlots(EffectiveDaySchedule{Closed: true}, 30)

	assert.Empty(t, slots)
}

func TestGenerateDaySlots_SingleShiftOnly(t *testing.T) {
	schedule := EffectiveDaySchedule{
		Dinner: &TimeWindow{Start: "20:00", End: "21:00"},
	}

	slots := GenerateDaySlots(schedule, 30)

	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.Equal(t, ShiftDinner, slot.Shift)
	}
}

func TestDayContainsSlot(t *testing.T) {
	schedule := EffectiveDaySchedule{
		Lunch:  &TimeWindow{Start: "13:00", End: "15:30"},
		Dinner: &TimeWindow{Start: "20:00", End: "23:00"},
	}

	assert.True(t, DayContainsSlot(schedule, 30, "13:30", ShiftLunch))
	assert.True(t, DayContainsSlot(schedule, 30, "20:00", ShiftDinner))
	// Время валидно, но смена не та
	assert.False(t, DayContainsSlot(schedule, 30, "13:30", ShiftDinner))
	// Время не на сетке шага
	assert.False(t, DayContainsSlot(schedule, 30, "13:15", ShiftLunch))
	// Вне окна
	assert.False(t, DayContainsSlot(schedule, 30, "16:00", ShiftLunch))
}
