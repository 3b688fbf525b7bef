package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kland-web/internal/models"
)

func TestNewsListPublishedWithLimit(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "image_url", "created_at", "is_published"}).
		AddRow(1, "Open day", "Come", "", now, true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM news WHERE is_published = TRUE ORDER BY created_at DESC LIMIT 3")).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), true, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Open day", items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, image_url, created_at, is_published FROM news ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "image_url", "created_at", "is_published"}))

	items, err := repo.List(context.Background(), false, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsUpdateMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	mock.ExpectExec("UPDATE news SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.News{ID: 42, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmissionPeriodListActive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAdmissionPeriodRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "application_start", "application_end", "studies_start", "is_active", "created_at"}).
		AddRow(1, "Spring", "2024-01-01", "2024-02-01", "2024-03-01", true, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM admission_periods WHERE is_active = TRUE ORDER BY created_at DESC")).
		WillReturnRows(rows)

	periods, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.True(t, periods[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmissionPeriodCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAdmissionPeriodRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO admission_periods").
		WithArgs("Fall", "a", "b", "c", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))

	period := &models.AdmissionPeriod{Name: "Fall", ApplicationStart: "a", ApplicationEnd: "b", StudiesStart: "c"}
	require.NoError(t, repo.Create(context.Background(), period))
	assert.Equal(t, int64(9), period.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageCreateAndDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO messages (name, phone, message) VALUES ($1, $2, $3) RETURNING id, created_at")).
		WithArgs("Lee", "010", "Hello").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	mock.ExpectExec("DELETE FROM messages").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	msg := &models.Message{Name: "Lee", Phone: "010", Message: "Hello"}
	require.NoError(t, repo.Create(context.Background(), msg))
	assert.Equal(t, int64(1), msg.ID)

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
