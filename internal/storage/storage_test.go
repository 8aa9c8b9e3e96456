package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"codeberg.org/atelier/server/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageCode(t *testing.T, err error) string {
	t.Helper()

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	return storageErr.Code
}

func TestTranslateError_Nil(t *testing.T) {
	assert.NoError(t, TranslateError("products.Get", nil))
}

func TestTranslateError_NoRows(t *testing.T) {
	err := TranslateError("products.Get", pgx.ErrNoRows)

	assert.Equal(t, "not-found", storageCode(t, err))
}

func TestTranslateError_PgErrorCodes(t *testing.T) {
	tests := []struct {
		pgCode string
		want   string
	}{
		{"23505", "already-exists"},
		{"42501", "permission-denied"},
		{"40001", "aborted"},
		{"40P01", "aborted"},
		{"53300", "resource-exhausted"},
		{"08006", "unavailable"},
		{"23503", "failed-precondition"},
		{"XX001", "data-loss"},
	}

	for _, tt := range tests {
		t.Run(tt.pgCode, func(t *testing.T) {
			err := TranslateError("orders.Create", &pgconn.PgError{Code: tt.pgCode})

			assert.Equal(t, tt.want, storageCode(t, err))
		})
	}
}

func TestTranslateError_WrappedPgError(t *testing.T) {
	wrapped := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505"})

	err := TranslateError("orders.Create", wrapped)

	assert.Equal(t, "already-exists", storageCode(t, err))
}

func TestTranslateError_ContextDeadline(t *testing.T) {
	err := TranslateError("orders.List", context.DeadlineExceeded)

	assert.Equal(t, "unavailable", storageCode(t, err))
}

func TestTranslateError_UnrecognizedErrorIsWrappedOnly(t *testing.T) {
	cause := errors.New("driver hiccup")

	err := TranslateError("orders.List", cause)

	var storageErr *apperrors.StorageError
	assert.False(t, errors.As(err, &storageErr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "orders.List")
}

func TestTranslateError_PreservesOperation(t *testing.T) {
	err := TranslateError("products.Delete", pgx.ErrNoRows)

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "products.Delete", storageErr.Op)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
