package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const foreignKeyViolation = "23503"

var columns = []string{
	"c.id",
	"c.name",
	"c.address",
	"c.postal_code",
	"c.phone",
	"c.division_id",
	"d.name",
	"d.country_id",
	"co.name",
	"c.created_at",
	"c.created_by",
	"c.updated_at",
	"c.last_updated_by",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectCustomers() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("customers c").
		Join("first_level_divisions d ON d.id = c.division_id").
		Join("countries co ON co.id = d.country_id")
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "address", "postal_code", "phone", "division_id", "created_by", "last_updated_by").
		Values(c.Name, c.Address, c.PostalCode, c.Phone, c.DivisionID, c.CreatedBy, c.LastUpdatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isForeignKeyViolation(err) {
		return nil, ErrDivisionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID получает клиента по ID вместе с названиями региона и страны
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectCustomers().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	c, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %w", ErrScanRow, err)
	}

	return c, nil
}

// GetAll получает всех клиентов, отсортированных по ID
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectCustomers().
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return customers, nil
}

// Update обновляет данные клиента
func (r *Repository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("name", c.Name).
		Set("address", c.Address).
		Set("postal_code", c.PostalCode).
		Set("phone", c.Phone).
		Set("division_id", c.DivisionID).
		Set("last_updated_by", c.LastUpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING created_at, created_by, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if isForeignKeyViolation(err) {
		return nil, ErrDivisionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return c, nil
}

// Delete удаляет клиента. Встречи клиента должны быть удалены заранее.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return ErrHasAppointments
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// CountByCountry считает клиентов, чей регион относится к стране
func (r *Repository) CountByCountry(ctx context.Context, countryID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("customers c").
		Join("first_level_divisions d ON d.id = c.division_id").
		Where(squirrel.Eq{"d.country_id": countryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByCountry - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCountry - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.PostalCode,
		&c.Phone,
		&c.DivisionID,
		&c.DivisionName,
		&c.CountryID,
		&c.CountryName,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.UpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
