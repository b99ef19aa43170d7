package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile"
)

func newStoreFixture(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewStore(mock), mock
}

func TestStore_Get_Success(t *testing.T) {
	store, mock := newStoreFixture(t)

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := pgxmock.NewRows([]string{"uid", "name", "email", "created_at", "updated_at"}).
		AddRow("uid-1", "Maya", "maya@example.com", now, now)

	mock.ExpectQuery("SELECT uid, name, email, created_at, updated_at").
		WithArgs("uid-1").
		WillReturnRows(rows)

	doc, err := store.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", doc.UID)
	assert.Equal(t, "Maya", doc.Name)
	assert.Equal(t, "maya@example.com", doc.Email)
	assert.Equal(t, now, doc.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_NotFound(t *testing.T) {
	store, mock := newStoreFixture(t)

	mock.ExpectQuery("SELECT uid, name, email, created_at, updated_at").
		WithArgs("uid-missing").
		WillReturnError(errors.New("no rows in result set"))

	_, err := store.Get(context.Background(), "uid-missing")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_NoRowsMapsToNotFound(t *testing.T) {
	store, mock := newStoreFixture(t)

	rows := pgxmock.NewRows([]string{"uid", "name", "email", "created_at", "updated_at"})
	mock.ExpectQuery("SELECT uid, name, email, created_at, updated_at").
		WithArgs("uid-missing").
		WillReturnRows(rows)

	_, err := store.Get(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Upsert_Success(t *testing.T) {
	store, mock := newStoreFixture(t)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("uid-1", "Maya", "maya@example.com", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Upsert(context.Background(), &profile.Document{
		UID:   "uid-1",
		Name:  "Maya",
		Email: "maya@example.com",
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Upsert_Error(t *testing.T) {
	store, mock := newStoreFixture(t)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("uid-1", "Maya", "maya@example.com", pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := store.Upsert(context.Background(), &profile.Document{
		UID:   "uid-1",
		Name:  "Maya",
		Email: "maya@example.com",
	})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
