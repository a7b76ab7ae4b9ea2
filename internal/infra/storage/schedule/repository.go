package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельного шаблона и переопределений на даты
// Окна смен хранятся текстом "HH:MM": NULL - окно не задано (наследование),
// пустая строка в переопределении - смена закрыта на эту дату
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekly получает недельный шаблон (семь записей, по одной на день недели)
func (r *Repository) GetWeekly(ctx context.Context) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"lunch_start",
		"lunch_end",
		"dinner_start",
		"dinner_end",
	).
		From("weekly_schedule").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, 0, domain.WeekdaysPerWeek)
	for rows.Next() {
		var entry domain.WeeklyScheduleEntry
		var lunchStart, lunchEnd, dinnerStart, dinnerEnd sql.NullString

		if err := rows.Scan(
			&entry.Weekday,
			&entry.IsOpen,
			&lunchStart,
			&lunchEnd,
			&dinnerStart,
			&dinnerEnd,
		); err != nil {
			return nil, fmt.Errorf("%w: GetWeekly - scan row: %w", ErrScanRow, err)
		}

		entry.Lunch = windowFromColumns(lunchStart, lunchEnd)
		entry.Dinner = windowFromColumns(dinnerStart, dinnerEnd)
		schedule = append(schedule, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - rows error: %w", ErrScanRow, err)
	}

	if len(schedule) == 0 {
		return nil, ErrWeeklyScheduleNotFound
	}

	return schedule, nil
}

// ReplaceWeekly заменяет недельный шаблон целиком (last-writer-wins)
// Каждая запись апсертится по дню недели
func (r *Repository) ReplaceWeekly(ctx context.Context, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, entry := range schedule {
		query, args, err := psqlbuilder.Insert("weekly_schedule").
			Columns("weekday", "is_open", "lunch_start", "lunch_end", "dinner_start", "dinner_end", "updated_at").
			Values(
				entry.Weekday,
				entry.IsOpen,
				nullableTime(entry.Lunch.Start),
				nullableTime(entry.Lunch.End),
				nullableTime(entry.Dinner.Start),
				nullableTime(entry.Dinner.End),
				squirrel.Expr("NOW()"),
			).
			Suffix(`ON CONFLICT (weekday) DO UPDATE SET
				is_open = EXCLUDED.is_open,
				lunch_start = EXCLUDED.lunch_start,
				lunch_end = EXCLUDED.lunch_end,
				dinner_start = EXCLUDED.dinner_start,
				dinner_end = EXCLUDED.dinner_end,
				updated_at = NOW()`).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: ReplaceWeekly - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceWeekly - execute upsert: %w", ErrExecQuery, err)
		}
	}

	return nil
}

// specialDayColumns колонки таблицы special_days в порядке сканирования
var specialDayColumns = []string{
	"id",
	"date",
	"is_closed",
	"lunch_start",
	"lunch_end",
	"dinner_start",
	"dinner_end",
	"created_at",
	"updated_at",
}

// GetSpecialDay получает переопределение расписания на дату
func (r *Repository) GetSpecialDay(ctx context.Context, date time.Time) (*domain.SpecialDayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(specialDayColumns...).
		From("special_days").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDay - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanSpecialDay(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDay - scan special day: %w", ErrScanRow, err)
	}

	return override, nil
}

// ListSpecialDays получает все переопределения, отсортированные по дате
func (r *Repository) ListSpecialDays(ctx context.Context) ([]*domain.SpecialDayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(specialDayColumns...).
		From("special_days").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecialDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecialDays - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.SpecialDayOverride, 0)
	for rows.Next() {
		override, err := scanSpecialDayRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSpecialDays - scan row: %w", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpecialDays - rows error: %w", ErrScanRow, err)
	}

	return overrides, nil
}

// UpsertSpecialDay создает или обновляет переопределение по дате (уникальна)
func (r *Repository) UpsertSpecialDay(ctx context.Context, override *domain.SpecialDayOverride) (*domain.SpecialDayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	lunchStart, lunchEnd := windowToColumns(override.Lunch)
	dinnerStart, dinnerEnd := windowToColumns(override.Dinner)

	query, args, err := psqlbuilder.Insert("special_days").
		Columns("date", "is_closed", "lunch_start", "lunch_end", "dinner_start", "dinner_end").
		Values(
			override.Date.Format(domain.DateFormat),
			override.IsClosed,
			lunchStart,
			lunchEnd,
			dinnerStart,
			dinnerEnd,
		).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			dinner_start = EXCLUDED.dinner_start,
			dinner_end = EXCLUDED.dinner_end,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSpecialDay - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSpecialDay - execute upsert: %w", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// DeleteSpecialDay удаляет переопределение, возвращая дату к недельному шаблону
func (r *Repository) DeleteSpecialDay(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialDayNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecialDay(row *sql.Row) (*domain.SpecialDayOverride, error) {
	return scanSpecialDayRow(row)
}

func scanSpecialDayRow(s scanner) (*domain.SpecialDayOverride, error) {
	var override domain.SpecialDayOverride
	var lunchStart, lunchEnd, dinnerStart, dinnerEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&override.ID,
		&override.Date,
		&override.IsClosed,
		&lunchStart,
		&lunchEnd,
		&dinnerStart,
		&dinnerEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	override.Lunch = overrideWindowFromColumns(lunchStart, lunchEnd)
	override.Dinner = overrideWindowFromColumns(dinnerStart, dinnerEnd)
	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// windowFromColumns собирает окно недельного шаблона из пары колонок
func windowFromColumns(start, end sql.NullString) domain.TimeWindow {
	if !start.Valid || !end.Valid {
		return domain.TimeWindow{}
	}
	return domain.TimeWindow{
		Start: types.TimeString(start.String),
		End:   types.TimeString(end.String),
	}
}

// overrideWindowFromColumns собирает окно переопределения:
// NULL-колонки означают наследование шаблона (nil окно)
func overrideWindowFromColumns(start, end sql.NullString) *domain.TimeWindow {
	if !start.Valid && !end.Valid {
		return nil
	}
	return &domain.TimeWindow{
		Start: types.TimeString(start.String),
		End:   types.TimeString(end.String),
	}
}

// windowToColumns раскладывает окно переопределения в пару колонок
func windowToColumns(w *domain.TimeWindow) (interface{}, interface{}) {
	if w == nil {
		return nil, nil
	}
	return w.Start.String(), w.End.String()
}

// nullableTime превращает пустое время в NULL
func nullableTime(t types.TimeString) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.String()
}
