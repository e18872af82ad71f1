package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
)

func TestArtistCreateSeedsSearchingSlots(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	created := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO artists").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WithArgs(uint64(4), "2024-03-01", model.StatusSearching).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WithArgs(uint64(4), "2024-03-08", model.StatusSearching).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery("SELECT created_at FROM artists").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	a := &model.Artist{Name: "Nina", City: "Oakland", State: "CA", Genres: []string{"Soul"}}
	dates := []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Create(context.Background(), a, dates)

	require.NoError(t, err)
	assert.Equal(t, uint64(4), a.ID)
	assert.Equal(t, created, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistCreateDuplicateDateRollsBack(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO artists").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WithArgs(uint64(4), "2024-03-01", model.StatusSearching).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WithArgs(uint64(4), "2024-03-01", model.StatusSearching).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	a := &model.Artist{Name: "Nina"}
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	err := repo.Create(context.Background(), a, []time.Time{d, d})

	require.ErrorIs(t, err, ErrDuplicateDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrArtistNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistSearchMatchesCity(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	cols := []string{"id", "name", "city", "state", "phone", "genres", "image_link",
		"facebook_link", "website_link", "seeking_venue", "seeking_description", "created_at"}
	mock.ExpectQuery("FROM artists").
		WithArgs("%oakland%", "%oakland%", "%oakland%").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			4, "Nina", "Oakland", "CA", "", []byte(`["Soul"]`), "", "", "", false, "", time.Now()))

	got, err := repo.Search(context.Background(), "Oakland")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nina", got[0].Name)
	assert.Equal(t, []string{"Soul"}, got[0].Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistDeleteCascadesSlotsAndShows(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArtistRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM artists").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DELETE FROM availabilities").
		WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM shows").
		WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM artists").
		WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
