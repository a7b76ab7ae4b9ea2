package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

// fakeTx транзакция с настраиваемой ошибкой фиксации
type fakeTx struct {
	commitErr error
	rollbacks int
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

// fakeTxBeginner выдает по одной транзакции на попытку
type fakeTxBeginner struct {
	begins int
	txs    []*fakeTx
}

func (b *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := b.txs[b.begins]
	b.begins++
	return tx, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesSerializationFailureAtCommit(t *testing.T) {
	db := &fakeTxBeginner{txs: []*fakeTx{
		{commitErr: serializationErr()},
		{},
	}}
	manager := NewTransactionManager(db)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, db.begins)
}

func TestDoSerializable_RetriesWrappedSerializationFailureFromFn(t *testing.T) {
	db := &fakeTxBeginner{txs: []*fakeTx{{}, {}}}
	manager := NewTransactionManager(db)

	errExec := errors.New("reservation.repository: failed to execute query")
	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			// Репозитории оборачивают ошибку драйвера через %w,
			// конфликт сериализации должен остаться различимым
			return fmt.Errorf("%w: GetActiveByDate - execute query: %w", errExec, serializationErr())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, db.begins)
	assert.Equal(t, 1, db.txs[0].rollbacks)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeTxBeginner{txs: []*fakeTx{
		{commitErr: serializationErr()},
		{commitErr: serializationErr()},
		{commitErr: serializationErr()},
	}}
	manager := NewTransactionManager(db)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.Equal(t, maxSerializationRetries, db.begins)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	db := &fakeTxBeginner{txs: []*fakeTx{{}, {}}}
	manager := NewTransactionManager(db)

	errBusiness := errors.New("capacity exceeded")
	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return errBusiness
	})

	require.ErrorIs(t, err, errBusiness)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, db.begins)
}
