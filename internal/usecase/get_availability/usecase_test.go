package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	occupancy map[types.TimeString]int
	err       error
}

func (f *fakeReservationRepo) CountActiveByTimeSlot(_ context.Context, _ time.Time) (map[types.TimeString]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.occupancy, nil
}

type fakeScheduleService struct {
	schedule domain.EffectiveDaySchedule
	err      error
}

func (f *fakeScheduleService) ResolveDay(_ context.Context, _ time.Time) (domain.EffectiveDaySchedule, error) {
	if f.err != nil {
		return domain.EffectiveDaySchedule{}, f.err
	}
	return f.schedule, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func openSchedule() domain.EffectiveDaySchedule {
	return domain.EffectiveDaySchedule{
		Lunch:  &domain.TimeWindow{Start: "13:00", End: "15:30"},
		Dinner: &domain.TimeWindow{Start: "20:00", End: "23:00"},
	}
}

func newTestUseCase(repo ReservationRepository, svc ScheduleService, now time.Time) *UseCase {
	uc := NewUseCase(repo, svc, 10, 30, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_FutureDateAllSlotsAvailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{}},
		&fakeScheduleService{schedule: openSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	// Обед 13:00-15:30 и ужин 20:00-23:00 по 30 минут, границы включительно
	require.Len(t, resp.Slots, 6+7)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[0].Time)
	assert.Equal(t, "LUNCH", resp.Slots[0].Shift)
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[6].Time)
	assert.Equal(t, "DINNER", resp.Slots[6].Shift)
	for _, slot := range resp.Slots {
		assert.False(t, slot.IsPast)
		assert.True(t, slot.Available)
		assert.Equal(t, 10, slot.Capacity)
	}
}

func TestExecute_OccupancyLimitsAvailability(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{
			"13:30": 10,
			"14:00": 4,
		}},
		&fakeScheduleService{schedule: openSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	bySlot := make(map[types.TimeString]Slot)
	for _, slot := range resp.Slots {
		bySlot[slot.Time] = slot
	}
	assert.False(t, bySlot["13:30"].Available)
	assert.Equal(t, 10, bySlot["13:30"].Occupied)
	assert.True(t, bySlot["14:00"].Available)
	assert.Equal(t, 4, bySlot["14:00"].Occupied)
}

func TestExecute_TodayPastSlotsFiltered(t *testing.T) {
	now := time.Date(2025, 6, 14, 14, 10, 0, 0, time.UTC)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{}},
		&fakeScheduleService{schedule: openSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	bySlot := make(map[types.TimeString]Slot)
	for _, slot := range resp.Slots {
		bySlot[slot.Time] = slot
	}
	assert.True(t, bySlot["13:30"].IsPast)
	assert.False(t, bySlot["13:30"].Available)
	assert.False(t, bySlot["14:30"].IsPast)
	assert.True(t, bySlot["14:30"].Available)
	assert.False(t, bySlot["20:00"].IsPast)
}

func TestExecute_PastDateAllSlotsPast(t *testing.T) {
	now := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{}},
		&fakeScheduleService{schedule: openSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsPast)
		assert.False(t, slot.Available)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{}},
		&fakeScheduleService{schedule: domain.EffectiveDaySchedule{Closed: true}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	assert.NotEmpty(t, resp.Message)
}

func TestExecute_ScheduleFailureDegradesToClosed(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{occupancy: map[types.TimeString]int{}},
		&fakeScheduleService{err: errors.New("db down")},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, msgDegraded, resp.Message)
}

func TestExecute_OccupancyFailureDegradesToClosed(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeReservationRepo{err: errors.New("db down")},
		&fakeScheduleService{schedule: openSchedule()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeReservationRepo{},
		&fakeScheduleService{schedule: openSchedule()},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
