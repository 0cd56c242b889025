// AngelaMos | 2026
// seed_test.go

package chant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInsertsStarterCatalogWhenEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE chants`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM chants`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	txStart := time.Now()
	for i, c := range starterChants() {
		mock.ExpectQuery(`INSERT INTO chants`).
			WithArgs(sqlmock.AnyArg(), c.Title, c.Description, c.Frequency, c.AudioURL, c.Category, c.IsPremium).
			WillReturnRows(sqlmock.NewRows([]string{"seq", "created_at"}).AddRow(i+1, txStart))
	}
	mock.ExpectCommit()

	n, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSkipsPopulatedCatalog(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE chants`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM chants`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectCommit()

	n, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE chants`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM chants`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO chants`).
		WillReturnRows(sqlmock.NewRows([]string{"seq", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectQuery(`INSERT INTO chants`).WillReturnError(boom)
	mock.ExpectRollback()

	n, err := Seed(context.Background(), db)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStarterCatalog(t *testing.T) {
	chants := starterChants()
	require.Len(t, chants, 4)

	premium := 0
	for _, c := range chants {
		if c.IsPremium {
			premium++
		}
	}
	assert.Equal(t, 2, premium)
	assert.Equal(t, "432Hz", chants[0].Frequency)
}
