// AngelaMos | 2026
// repository_test.go

package mood

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryListRecentQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))
	now := time.Now()

	mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY created_at DESC, id DESC\s+LIMIT \$2`).
		WithArgs("u-1", HistoryLimit).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "rating", "note", "meditation_duration", "frequency", "created_at",
		}).
			AddRow("m-2", "u-1", 4, "calm", 10, "528Hz", now).
			AddRow("m-1", "u-1", 2, "tired", 5, "432Hz", now.Add(-time.Hour)))

	moods, err := repo.ListRecent(context.Background(), "u-1", HistoryLimit)
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "m-2", moods[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateAndCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO moods`).
		WithArgs("m-1", "u-1", 4, "calm", 10, "528Hz").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM moods`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	m := &Mood{ID: "m-1", UserID: "u-1", Rating: 4, Note: "calm", MeditationDuration: 10, Frequency: "528Hz"}
	require.NoError(t, repo.Create(context.Background(), m))
	assert.Equal(t, now, m.CreatedAt)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
