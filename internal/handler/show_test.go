package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/repository"
)

// newTestHandler wires all repositories to one mocked DB so a single
// expectation script covers the whole request.
func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	h := New(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		repository.NewAvailabilityRepo(db),
	)
	return h, mock
}

func jsonRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var artistTestCols = []string{"id", "name", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_venue", "seeking_description", "created_at"}

var venueTestCols = []string{"id", "name", "address", "city", "state", "phone", "genres",
	"image_link", "facebook_link", "website_link", "seeking_talent", "seeking_description", "created_at"}

func artistTestRow() *sqlmock.Rows {
	return sqlmock.NewRows(artistTestCols).AddRow(
		5, "Nina", "Oakland", "CA", "", []byte(`["Soul"]`), "", "", "", false, "", time.Now())
}

func venueTestRow() *sqlmock.Rows {
	return sqlmock.NewRows(venueTestCols).AddRow(
		2, "The Dive", "100 Main St", "San Francisco", "CA", "", []byte(`["Jazz"]`),
		"", "", "", false, "", time.Now())
}

func TestCreateShowRequiresFields(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing artist", `{"venue_id": 2, "start_time": "2024-03-01 20:00:00"}`, "artist_id is required"},
		{"missing venue", `{"artist_id": 5, "start_time": "2024-03-01 20:00:00"}`, "venue_id is required"},
		{"missing start time", `{"artist_id": 5, "venue_id": 2}`, "start_time is required"},
		{"bad start time", `{"artist_id": 5, "venue_id": 2, "start_time": "yesterday"}`, "invalid start_time format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := jsonRequest(t, http.MethodPost, "/v1/shows", tc.body)
			require.NoError(t, h.CreateShow(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeBody(t, rec)["error"])
		})
	}
}

func TestCreateShowUnknownArtist(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(5)).
		WillReturnError(sql.ErrNoRows)

	c, rec := jsonRequest(t, http.MethodPost, "/v1/shows",
		`{"artist_id": 5, "venue_id": 2, "start_time": "2024-03-01 20:00:00"}`)
	require.NoError(t, h.CreateShow(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "artist not found", decodeBody(t, rec)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowBookedDateConflict(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(5)).
		WillReturnRows(artistTestRow())
	mock.ExpectQuery("FROM venues WHERE id").
		WithArgs(uint64(2)).
		WillReturnRows(venueTestRow())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM availabilities").
		WithArgs(uint64(5), "2024-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectRollback()

	c, rec := jsonRequest(t, http.MethodPost, "/v1/shows",
		`{"artist_id": 5, "venue_id": 2, "start_time": "2024-03-01 20:00:00"}`)
	require.NoError(t, h.CreateShow(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "date_booked", body["error"])
	assert.Equal(t, bookedMessage, body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowSuccess(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("FROM artists WHERE id").
		WithArgs(uint64(5)).
		WillReturnRows(artistTestRow())
	mock.ExpectQuery("FROM venues WHERE id").
		WithArgs(uint64(2)).
		WillReturnRows(venueTestRow())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM availabilities").
		WithArgs(uint64(5), "2024-03-02").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO shows").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO availabilities").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("SELECT created_at FROM shows").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	c, rec := jsonRequest(t, http.MethodPost, "/v1/shows",
		`{"artist_id": 5, "venue_id": 2, "start_time": "2024-03-02 20:00:00"}`)
	require.NoError(t, h.CreateShow(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Show was successfully listed!", body["message"])
	show, ok := body["show"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(11), show["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListShows(t *testing.T) {
	h, mock := newTestHandler(t)

	start := time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM shows s").
		WillReturnRows(sqlmock.NewRows([]string{"v.id", "v.name", "a.id", "a.name", "a.image_link", "s.start_time"}).
			AddRow(2, "The Dive", 5, "Nina", "", start))

	c, rec := jsonRequest(t, http.MethodGet, "/v1/shows", "")
	require.NoError(t, h.ListShows(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	items, ok := decodeBody(t, rec)["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
