package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDo_Commit(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))
		exec := dbmetrics.GetExecutor(ctx, nil)
		_, err := exec.ExecContext(ctx, "DELETE FROM appointments WHERE customer_id = $1", 1)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("overlap")
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginError(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := mgr.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDo_CommitError(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := mgr.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesQuerySerializationFailure(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		rows, err := dbmetrics.GetExecutor(ctx, nil).QueryContext(ctx, "SELECT id FROM appointments")
		if err != nil {
			return fmt.Errorf("wrapped: %w", err)
		}
		return rows.Close()
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterAttempts(t *testing.T) {
	mgr, mock := newManager(t)
	mgr.WithSerializableAttempts(2)
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	}

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505"})

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NotErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
