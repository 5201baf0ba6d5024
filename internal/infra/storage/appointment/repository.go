package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"title",
	"description",
	"location",
	"type",
	"start_at",
	"end_at",
	"customer_id",
	"user_id",
	"contact_id",
	"created_at",
	"created_by",
	"updated_at",
	"last_updated_by",
}

// Repository репозиторий для работы со встречами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую встречу
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"title",
			"description",
			"location",
			"type",
			"start_at",
			"end_at",
			"customer_id",
			"user_id",
			"contact_id",
			"created_by",
			"last_updated_by",
		).
		Values(
			a.Title,
			a.Description,
			a.Location,
			a.Type,
			a.Start.UTC(),
			a.End.UTC(),
			a.CustomerID,
			a.UserID,
			a.ContactID,
			a.CreatedBy,
			a.LastUpdatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// GetAll получает все встречи, отсортированные по времени начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	return r.List(ctx, domain.AppointmentFilter{})
}

// GetByCustomerID получает все встречи клиента
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	return r.List(ctx, domain.AppointmentFilter{CustomerID: &customerID})
}

// List получает встречи с фильтрацией по клиенту, контакту, пользователю и периоду начала
//
// Примеры использования:
//
//  1. Все встречи контакта:
//     filter := domain.AppointmentFilter{ContactID: &contactID}
//
//  2. Встречи за неделю:
//     filter := domain.AppointmentFilter{Period: &domain.Period{From: weekStart, To: weekStart.AddDate(0, 0, 7)}}
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_at ASC", "id ASC")

	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ContactID != nil {
		builder = builder.Where(squirrel.Eq{"contact_id": *filter.ContactID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Period != nil {
		builder = builder.
			Where(squirrel.GtOrEq{"start_at": filter.Period.From.UTC()}).
			Where(squirrel.Lt{"start_at": filter.Period.To.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetUpcomingByUserID получает встречи пользователя, начинающиеся в интервале [from, to]
func (r *Repository) GetUpcomingByUserID(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"start_at": from.UTC()}).
		Where(squirrel.LtOrEq{"start_at": to.UTC()}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update обновляет все изменяемые поля встречи
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("title", a.Title).
		Set("description", a.Description).
		Set("location", a.Location).
		Set("type", a.Type).
		Set("start_at", a.Start.UTC()).
		Set("end_at", a.End.UTC()).
		Set("customer_id", a.CustomerID).
		Set("user_id", a.UserID).
		Set("contact_id", a.ContactID).
		Set("last_updated_by", a.LastUpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING created_at, created_by, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return a, nil
}

// Delete удаляет встречу по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteByCustomerID удаляет все встречи клиента и возвращает количество удаленных
func (r *Repository) DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCustomerID - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCustomerID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCustomerID - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// CountByCustomerID возвращает количество встреч клиента
func (r *Repository) CountByCustomerID(ctx context.Context, customerID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByCustomerID - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCustomerID - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// DistinctTypes возвращает отсортированный список типов встреч
func (r *Repository) DistinctTypes(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT type").
		From(table).
		OrderBy("type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctTypes - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctTypes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: DistinctTypes - scan row: %w", ErrScanRow, err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DistinctTypes - rows error: %w", ErrScanRow, err)
	}

	return types, nil
}

// CountByTypeAndMonth считает встречи указанного типа, начинающиеся в указанном месяце
// (любого года), месяц определяется в часовом поясе timeZone
func (r *Repository) CountByTypeAndMonth(ctx context.Context, appointmentType string, month time.Month, timeZone string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"type": appointmentType}).
		Where(squirrel.Expr("EXTRACT(MONTH FROM start_at AT TIME ZONE ?) = ?", timeZone, int(month))).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByTypeAndMonth - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByTypeAndMonth - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// CountByTypePerMonth группирует встречи года по типу и месяцу начала
func (r *Repository) CountByTypePerMonth(ctx context.Context, year int, timeZone string) ([]domain.TypeMonthCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type").
		Column(squirrel.Expr("EXTRACT(MONTH FROM start_at AT TIME ZONE ?)::int AS month", timeZone)).
		Column("COUNT(*)").
		From(table).
		Where(squirrel.Expr("EXTRACT(YEAR FROM start_at AT TIME ZONE ?) = ?", timeZone, year)).
		GroupBy("type", "month").
		OrderBy("type ASC", "month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypePerMonth - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypePerMonth - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.TypeMonthCount, 0)
	for rows.Next() {
		var (
			item  domain.TypeMonthCount
			month int
		)
		if err := rows.Scan(&item.Type, &month, &item.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByTypePerMonth - scan row: %w", ErrScanRow, err)
		}
		item.Month = time.Month(month)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByTypePerMonth - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Location,
		&a.Type,
		&a.Start,
		&a.End,
		&a.CustomerID,
		&a.UserID,
		&a.ContactID,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.UpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// scanAppointments сканирует результаты запроса в слайс встреч
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
