package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	weekly     domain.WeeklySchedule
	weeklyErr  error
	special    map[string]*domain.SpecialDayOverride
	specialErr error

	replaced domain.WeeklySchedule
	deleted  []string
}

func (f *fakeScheduleRepo) GetWeekly(_ context.Context) (domain.WeeklySchedule, error) {
	if f.weeklyErr != nil {
		return nil, f.weeklyErr
	}
	return f.weekly, nil
}

func (f *fakeScheduleRepo) ReplaceWeekly(_ context.Context, schedule domain.WeeklySchedule) error {
	f.replaced = schedule
	return nil
}

func (f *fakeScheduleRepo) GetSpecialDay(_ context.Context, date time.Time) (*domain.SpecialDayOverride, error) {
	if f.specialErr != nil {
		return nil, f.specialErr
	}
	override, ok := f.special[date.Format(domain.DateFormat)]
	if !ok {
		return nil, scheduleRepo.ErrSpecialDayNotFound
	}
	return override, nil
}

func (f *fakeScheduleRepo) ListSpecialDays(_ context.Context) ([]*domain.SpecialDayOverride, error) {
	var list []*domain.SpecialDayOverride
	for _, override := range f.special {
		list = append(list, override)
	}
	return list, nil
}

func (f *fakeScheduleRepo) UpsertSpecialDay(_ context.Context, override *domain.SpecialDayOverride) (*domain.SpecialDayOverride, error) {
	saved := *override
	saved.ID = 1
	return &saved, nil
}

func (f *fakeScheduleRepo) DeleteSpecialDay(_ context.Context, date time.Time) error {
	key := date.Format(domain.DateFormat)
	if _, ok := f.special[key]; !ok {
		return scheduleRepo.ErrSpecialDayNotFound
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// 2025-06-02 понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestResolveDay_WeeklyTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{weekly: domain.DefaultWeeklySchedule()}
	svc := NewService(repo, noopLogger{})

	resolved, err := svc.ResolveDay(context.Background(), monday)

	require.NoError(t, err)
	assert.False(t, resolved.Closed)
	require.NotNil(t, resolved.Lunch)
	assert.Equal(t, domain.TimeWindow{Start: "13:00", End: "15:30"}, *resolved.Lunch)
}

func TestResolveDay_SundayClosedByTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{weekly: domain.DefaultWeeklySchedule()}
	svc := NewService(repo, noopLogger{})

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	resolved, err := svc.ResolveDay(context.Background(), sunday)

	require.NoError(t, err)
	assert.True(t, resolved.Closed)
}

func TestResolveDay_OverrideClosesDay(t *testing.T) {
	repo := &fakeScheduleRepo{
		weekly: domain.DefaultWeeklySchedule(),
		special: map[string]*domain.SpecialDayOverride{
			"2025-06-02": {Date: monday, IsClosed: true},
		},
	}
	svc := NewService(repo, noopLogger{})

	resolved, err := svc.ResolveDay(context.Background(), monday)

	require.NoError(t, err)
	assert.True(t, resolved.Closed)
}

func TestResolveDay_OverrideReplacesWindows(t *testing.T) {
	repo := &fakeScheduleRepo{
		weekly: domain.DefaultWeeklySchedule(),
		special: map[string]*domain.SpecialDayOverride{
			"2025-06-02": {
				Date:  monday,
				Lunch: &domain.TimeWindow{Start: "12:00", End: "14:00"},
			},
		},
	}
	svc := NewService(repo, noopLogger{})

	resolved, err := svc.ResolveDay(context.Background(), monday)

	require.NoError(t, err)
	require.NotNil(t, resolved.Lunch)
	assert.Equal(t, domain.TimeWindow{Start: "12:00", End: "14:00"}, *resolved.Lunch)
	// Ужин наследуется из шаблона
	require.NotNil(t, resolved.Dinner)
	assert.Equal(t, domain.TimeWindow{Start: "20:00", End: "23:00"}, *resolved.Dinner)
}

func TestResolveDay_MalformedOverrideFallsBackToTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{
		weekly: domain.DefaultWeeklySchedule(),
		special: map[string]*domain.SpecialDayOverride{
			"2025-06-02": {
				Date:  monday,
				Lunch: &domain.TimeWindow{Start: "15:00", End: "12:00"},
			},
		},
	}
	svc := NewService(repo, noopLogger{})

	resolved, err := svc.ResolveDay(context.Background(), monday)

	require.NoError(t, err)
	require.NotNil(t, resolved.Lunch)
	assert.Equal(t, domain.TimeWindow{Start: "13:00", End: "15:30"}, *resolved.Lunch)
}

func TestResolveDay_MissingWeeklyUsesDefaults(t *testing.T) {
	repo := &fakeScheduleRepo{weeklyErr: scheduleRepo.ErrWeeklyScheduleNotFound}
	svc := NewService(repo, noopLogger{})

	resolved, err := svc.ResolveDay(context.Background(), monday)

	require.NoError(t, err)
	assert.False(t, resolved.Closed)
}

func TestResolveDay_RepositoryFailure(t *testing.T) {
	repo := &fakeScheduleRepo{weeklyErr: errors.New("db down")}
	svc := NewService(repo, noopLogger{})

	_, err := svc.ResolveDay(context.Background(), monday)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateWeekly_RejectsIncompleteTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateWeekly(context.Background(), &models.UpdateWeeklyScheduleRequest{
		Days: []models.DaySchedulePayload{{Weekday: 1, IsOpen: true}},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertSpecialDay_RejectsInvalidWindow(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpsertSpecialDay(context.Background(), &models.UpsertSpecialDayRequest{
		Date:  "2025-06-02",
		Lunch: &models.TimeWindowPayload{Start: "15:00", End: "12:00"},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertSpecialDay_EmptyWindowClosesShift(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpsertSpecialDay(context.Background(), &models.UpsertSpecialDayRequest{
		Date:  "2025-06-02",
		Lunch: &models.TimeWindowPayload{},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Lunch)
	assert.Equal(t, "", resp.Lunch.Start)
	assert.Equal(t, "", resp.Lunch.End)
}

func TestDeleteSpecialDay(t *testing.T) {
	repo := &fakeScheduleRepo{
		special: map[string]*domain.SpecialDayOverride{
			"2025-06-02": {Date: monday, IsClosed: true},
		},
	}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.DeleteSpecialDay(context.Background(), "2025-06-02"))
	assert.Equal(t, []string{"2025-06-02"}, repo.deleted)

	err := svc.DeleteSpecialDay(context.Background(), "2025-06-03")
	assert.ErrorIs(t, err, ErrSpecialDayNotFound)

	err = svc.DeleteSpecialDay(context.Background(), "bad-date")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
