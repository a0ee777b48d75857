package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSQLiteCache(t *testing.T) (LocalCache, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteCache(&DB{DB: db, logger: logger.Nop()}), mock
}

func TestSQLiteCache_Get_Found(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT value FROM cache_entries WHERE key = \?`).
		WithArgs("authUser").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"uid":"u1"}`)))

	got, err := cache.Get(context.Background(), "authUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"uid":"u1"}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCache_Get_Miss(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT value FROM cache_entries`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteCache_Get_QueryError(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT value FROM cache_entries`).
		WillReturnError(errors.New("disk I/O error"))

	_, err := cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteCache_Set_Upserts(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectExec(`INSERT INTO cache_entries \(key,value,updated_at\) VALUES \(\?,\?,\?\) ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("users/u1", []byte(`{"name":"A"}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := cache.Set(context.Background(), "users/u1", []byte(`{"name":"A"}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCache_Set_ExecError(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectExec(`INSERT INTO cache_entries`).WillReturnError(errors.New("readonly database"))

	err := cache.Set(context.Background(), "k", []byte(`1`))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteCache_Remove(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectExec(`DELETE FROM cache_entries WHERE key = \?`).
		WithArgs("c_temp_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cache.Remove(context.Background(), "c_temp_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCache_ListKeys(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT key FROM cache_entries ORDER BY key`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("a").AddRow("b"))

	keys, err := cache.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestSQLiteCache_ListKeys_Empty(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT key FROM cache_entries`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	keys, err := cache.ListKeys(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestSQLiteCache_ListKeys_RowError(t *testing.T) {
	cache, mock := newMockSQLiteCache(t)

	mock.ExpectQuery(`SELECT key FROM cache_entries`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("a").RowError(0, errors.New("corrupt page")))

	_, err := cache.ListKeys(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
