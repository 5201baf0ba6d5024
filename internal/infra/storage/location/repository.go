// Package location хранит справочники стран и регионов первого уровня
package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий стран и регионов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCountries получает все страны
func (r *Repository) GetCountries(ctx context.Context) ([]*domain.Country, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("countries").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountries - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountries - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	countries := make([]*domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: GetCountries - scan row: %w", ErrScanRow, err)
		}
		countries = append(countries, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCountries - rows error: %w", ErrScanRow, err)
	}

	return countries, nil
}

// GetCountryByID получает страну по ID
func (r *Repository) GetCountryByID(ctx context.Context, id int64) (*domain.Country, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("countries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountryByID - build select query: %w", ErrBuildQuery, err)
	}

	var c domain.Country
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCountryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountryByID - scan country: %w", ErrScanRow, err)
	}

	return &c, nil
}

// GetDivisionsByCountry получает регионы страны, отсортированные по названию
func (r *Repository) GetDivisionsByCountry(ctx context.Context, countryID int64) ([]*domain.Division, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "country_id").
		From("first_level_divisions").
		Where(squirrel.Eq{"country_id": countryID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDivisionsByCountry - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDivisionsByCountry - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	divisions := make([]*domain.Division, 0)
	for rows.Next() {
		var d domain.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.CountryID); err != nil {
			return nil, fmt.Errorf("%w: GetDivisionsByCountry - scan row: %w", ErrScanRow, err)
		}
		divisions = append(divisions, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDivisionsByCountry - rows error: %w", ErrScanRow, err)
	}

	return divisions, nil
}
