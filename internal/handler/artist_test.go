package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
)

func TestCreateArtistRejectsBadAvailabilityDate(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := jsonRequest(t, http.MethodPost, "/v1/artists",
		`{"name": "Nina", "availabilities": ["next tuesday"]}`)
	require.NoError(t, h.CreateArtist(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid availability date: next tuesday", decodeBody(t, rec)["error"])
}

func TestCreateArtistDuplicateAvailabilityDate(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO artists").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	c, rec := jsonRequest(t, http.MethodPost, "/v1/artists",
		`{"name": "Nina", "availabilities": ["2024-03-01", "2024-03-01"]}`)
	require.NoError(t, h.CreateArtist(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate availability date", decodeBody(t, rec)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArtistWithSeededSlots(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO artists").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WithArgs(uint64(4), "2024-03-01", model.StatusSearching).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT created_at FROM artists").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	c, rec := jsonRequest(t, http.MethodPost, "/v1/artists",
		`{"name": "Nina", "seeking_venue": "y", "availabilities": ["2024-03-01"]}`)
	require.NoError(t, h.CreateArtist(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Artist Nina was successfully listed!", body["message"])
	artist, ok := body["artist"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, artist["seeking_venue"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArtistIncludesAvailabilities(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(5)).
		WillReturnRows(artistTestRow())
	mock.ExpectQuery("FROM shows s").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_link", "start_time"}).
			AddRow(2, "The Dive", "", time.Now().Add(24*time.Hour)))
	mock.ExpectQuery("FROM availabilities WHERE artist_id").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "artist_id", "date", "status", "show_id", "created_at"}).
			AddRow(8, 5, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), model.StatusSearching, nil, time.Now()))

	c, rec := jsonRequest(t, http.MethodGet, "/v1/artists/5", "")
	c.SetPath("/v1/artists/:id")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.GetArtist(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["past_shows_count"])
	assert.Equal(t, float64(1), body["upcoming_shows_count"])
	slots, ok := body["availabilities"].([]any)
	require.True(t, ok)
	assert.Len(t, slots, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchArtistsCount(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM artists").
		WithArgs("%nina%", "%nina%", "%nina%").
		WillReturnRows(artistTestRow())

	c, rec := jsonRequest(t, http.MethodPost, "/v1/artists/search", `{"search_term": "Nina"}`)
	require.NoError(t, h.SearchArtists(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
