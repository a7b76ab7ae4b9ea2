package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// fakeReservationRepo хранит брони в памяти; доступ сериализуется
// транзакционным фейком, как это делает сериализуемая транзакция в БД
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res.IdempotencyKey != nil {
		for _, existing := range f.reservations {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *res.IdempotencyKey {
				return nil, reservationRepo.ErrDuplicateIdempotencyKey
			}
		}
	}
	stored := *res
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.reservations = append(f.reservations, &stored)
	return &stored, nil
}

func (f *fakeReservationRepo) GetByIdempotencyKey(_ context.Context, key string) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, res := range f.reservations {
		if res.IdempotencyKey != nil && *res.IdempotencyKey == key {
			copied := *res
			return &copied, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetActiveByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []*domain.Reservation
	for _, res := range f.reservations {
		if res.Date.Equal(date) && res.IsActive() {
			copied := *res
			active = append(active, &copied)
		}
	}
	return active, nil
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

type fakeNotifier struct {
	mu       sync.Mutex
	notified []string
}

func (f *fakeNotifier) NotifyAsync(res *domain.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, res.ID)
}

// fakeTxManager сериализует конкурирующие "транзакции" мьютексом,
// воспроизводя гарантию изоляции SERIALIZABLE
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
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

type testEnv struct {
	uc       *UseCase
	repo     *fakeReservationRepo
	notifier *fakeNotifier
}

func newTestEnv(capacity int, now time.Time) *testEnv {
	repo := &fakeReservationRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, &fakeScheduleService{schedule: openSchedule()}, notifier, &fakeTxManager{}, capacity, 30, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return &testEnv{uc: uc, repo: repo, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "13:30",
		Guests:    4,
		FirstName: "María",
		LastName:  "García",
		Email:     "maria@example.com",
	}
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestExecute_CreatesPendingReservation(t *testing.T) {
	env := newTestEnv(10, testNow)

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, domain.ShiftLunch, resp.Shift)
	assert.False(t, resp.AlreadyExists)
	assert.Equal(t, []string{resp.ID}, env.notifier.notified)
}

func TestExecute_DinnerShiftResolved(t *testing.T) {
	env := newTestEnv(10, testNow)
	req := validRequest()
	req.TimeSlot = "21:00"

	resp, err := env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.ShiftDinner, resp.Shift)
}

func TestExecute_SlotNotInSchedule(t *testing.T) {
	env := newTestEnv(10, testNow)
	req := validRequest()
	req.TimeSlot = "17:00"

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotInSchedule)
}

func TestExecute_ClosedDay(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, &fakeScheduleService{schedule: domain.EffectiveDaySchedule{Closed: true}},
		&fakeNotifier{}, &fakeTxManager{}, 10, 30, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotInSchedule)
}

func TestExecute_PastSlotRejected(t *testing.T) {
	now := time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)
	env := newTestEnv(10, now)

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_ValidationFailures(t *testing.T) {
	env := newTestEnv(10, testNow)

	tests := []struct {
		name   string
		modify func(req *Request)
	}{
		{"zero guests", func(req *Request) { req.Guests = 0 }},
		{"too many guests", func(req *Request) { req.Guests = domain.MaxGuests + 1 }},
		{"empty first name", func(req *Request) { req.FirstName = "  " }},
		{"empty last name", func(req *Request) { req.LastName = "" }},
		{"bad email", func(req *Request) { req.Email = "not-an-email" }},
		{"bad time slot", func(req *Request) { req.TimeSlot = "25:99" }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			_, err := env.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_CapacityExceeded(t *testing.T) {
	env := newTestEnv(2, testNow)

	for i := 0; i < 2; i++ {
		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_CanceledReservationFreesCapacity(t *testing.T) {
	env := newTestEnv(1, testNow)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отменяем бронь напрямую в хранилище
	env.repo.mu.Lock()
	for _, res := range env.repo.reservations {
		if res.ID == resp.ID {
			res.Status = domain.StatusCanceled
		}
	}
	env.repo.mu.Unlock()

	_, err = env.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_IdempotencyKeyReturnsExisting(t *testing.T) {
	env := newTestEnv(10, testNow)
	req := validRequest()
	req.IdempotencyKey = ptr.Ptr("retry-key-1")

	first, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.AlreadyExists)
	// Повтор не шлёт второе письмо
	assert.Len(t, env.notifier.notified, 1)
}

func TestExecute_ConcurrentCreatesNeverOverbook(t *testing.T) {
	const capacity = 3
	const attempts = 20

	env := newTestEnv(capacity, testNow)

	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrCapacityExceeded)
			rejected++
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, rejected)

	active, err := env.repo.GetActiveByDate(context.Background(), validRequest().Date)
	require.NoError(t, err)

	occupied := 0
	for _, res := range active {
		if res.TimeSlot == types.TimeString("13:30") {
			occupied++
		}
	}
	assert.Equal(t, capacity, occupied)
}
