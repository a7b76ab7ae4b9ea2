package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// settingsColumns колонки таблицы venue_settings в порядке сканирования
var settingsColumns = []string{
	"id",
	"restaurant_name",
	"address",
	"logo_path",
	"admin_email",
	"smtp_host",
	"smtp_port",
	"smtp_user",
	"smtp_pass",
	"subject_pending",
	"template_pending",
	"subject_confirmed",
	"template_confirmed",
	"subject_canceled",
	"template_canceled",
	"created_at",
	"updated_at",
}

// Repository репозиторий singleton-настроек заведения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает единственную строку настроек заведения
func (r *Repository) Get(ctx context.Context) (*domain.VenueSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("venue_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.VenueSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.RestaurantName,
		&s.Address,
		&s.LogoPath,
		&s.AdminEmail,
		&s.SMTPHost,
		&s.SMTPPort,
		&s.SMTPUser,
		&s.SMTPPass,
		&s.SubjectPending,
		&s.TemplatePending,
		&s.SubjectConfirmed,
		&s.TemplateConfirmed,
		&s.SubjectCanceled,
		&s.TemplateCanceled,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Save сохраняет настройки: обновляет существующую строку или создает первую
// Запись редкая (правки админом), перезапись целиком - last-writer-wins
func (r *Repository) Save(ctx context.Context, s *domain.VenueSettings) (*domain.VenueSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}

	if existing == nil {
		return r.insert(ctx, executor, s)
	}
	return r.update(ctx, executor, existing.ID, s)
}

func (r *Repository) insert(ctx context.Context, executor DBExecutor, s *domain.VenueSettings) (*domain.VenueSettings, error) {
	query, args, err := psqlbuilder.Insert("venue_settings").
		Columns(
			"restaurant_name",
			"address",
			"logo_path",
			"admin_email",
			"smtp_host",
			"smtp_port",
			"smtp_user",
			"smtp_pass",
			"subject_pending",
			"template_pending",
			"subject_confirmed",
			"template_confirmed",
			"subject_canceled",
			"template_canceled",
		).
		Values(
			s.RestaurantName,
			s.Address,
			s.LogoPath,
			s.AdminEmail,
			s.SMTPHost,
			s.SMTPPort,
			s.SMTPUser,
			s.SMTPPass,
			s.SubjectPending,
			s.TemplatePending,
			s.SubjectConfirmed,
			s.TemplateConfirmed,
			s.SubjectCanceled,
			s.TemplateCanceled,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: insert - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

func (r *Repository) update(ctx context.Context, executor DBExecutor, id int64, s *domain.VenueSettings) (*domain.VenueSettings, error) {
	query, args, err := psqlbuilder.Update("venue_settings").
		Set("restaurant_name", s.RestaurantName).
		Set("address", s.Address).
		Set("logo_path", s.LogoPath).
		Set("admin_email", s.AdminEmail).
		Set("smtp_host", s.SMTPHost).
		Set("smtp_port", s.SMTPPort).
		Set("smtp_user", s.SMTPUser).
		Set("smtp_pass", s.SMTPPass).
		Set("subject_pending", s.SubjectPending).
		Set("template_pending", s.TemplatePending).
		Set("subject_confirmed", s.SubjectConfirmed).
		Set("template_confirmed", s.TemplateConfirmed).
		Set("subject_canceled", s.SubjectCanceled).
		Set("template_canceled", s.TemplateCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: update - execute update: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
