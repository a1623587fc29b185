package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/paydesk/compchange/internal/apperrors"
)

// stubTx overrides Rollback only; the rest of pgx.Tx stays unimplemented.
type stubTx struct {
	pgx.Tx
	rollbackErr error
}

func (s stubTx) Rollback(ctx context.Context) error {
	return s.rollbackErr
}

func TestBaseRepository_RollbackToleratesClosedTx(t *testing.T) {
	r := NewBaseRepository(nil)

	err := r.Rollback(context.Background(), stubTx{rollbackErr: pgx.ErrTxClosed})
	assert.NoError(t, err)
}

func TestBaseRepository_RollbackWrapsRealFailure(t *testing.T) {
	r := NewBaseRepository(nil)
	cause := errors.New("connection reset")

	err := r.Rollback(context.Background(), stubTx{rollbackErr: cause})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, cause))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
