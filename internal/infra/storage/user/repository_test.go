package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_name, created_at, created_by, updated_at, last_updated_by FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "test", now, "system", now, "system"))
	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "test", u.UserName)

	_, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM users ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "test", now, "system", now, "system").
			AddRow(int64(2), "admin", now, "system", now, "system"))

	users, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[1].UserName)
}
