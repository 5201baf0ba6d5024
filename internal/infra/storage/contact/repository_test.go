package contact

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT id, name, email FROM contacts ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(int64(1), "Anika Costa", "acoders@company.com").
			AddRow(int64(3), "Li Lee", "llee@company.com"))
	mock.ExpectQuery(`SELECT id, name, email FROM contacts WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	contacts, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Li Lee", contacts[1].Name)

	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
