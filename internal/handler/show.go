// This file implements the show endpoints. Creating a show is the
// booking operation: the artist's calendar date is checked and claimed
// inside one repository transaction, and a show.booked event is
// published to the broker after the commit. Publish failures never fail
// the booking request.
package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	queuepublisher "github.com/iliyamo/venue-booking/internal/service/queue_publisher"
)

// bookedMessage is the conflict message shown when an artist's date is
// already taken.
const bookedMessage = "The given start time is already booked. Please choose another starting date."

// showForm is the typed input contract for booking submissions.
type showForm struct {
	ArtistID  uint64 `json:"artist_id" form:"artist_id"`
	VenueID   uint64 `json:"venue_id" form:"venue_id"`
	StartTime string `json:"start_time" form:"start_time"`
}

// ListShows handles GET /v1/shows and returns every show joined with
// its venue and artist.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.ShowRepo.ListDetailed(c.Request().Context())
	if err != nil {
		logrus.WithError(err).Error("shows: list failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": shows})
}

// CreateShow handles POST /v1/shows. Both referenced entities must
// exist; a show whose start date collides with any availability slot of
// the artist is rejected with a 409 and no row is written. On success
// the artist's date is left claimed by a booked availability slot
// linked to the new show.
func (h *Handler) CreateShow(c echo.Context) error {
	var form showForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if form.ArtistID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "artist_id is required"})
	}
	if form.VenueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id is required"})
	}
	if strings.TrimSpace(form.StartTime) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time is required"})
	}
	startTime, err := parseTimestamp(form.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time format"})
	}
	ctx := c.Request().Context()
	artist, err := h.ArtistRepo.GetByID(ctx, form.ArtistID)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		logrus.WithError(err).Error("shows: verify artist failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	venue, err := h.VenueRepo.GetByID(ctx, form.VenueID)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		logrus.WithError(err).Error("shows: verify venue failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	show := &model.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: startTime,
	}
	if err := h.ShowRepo.CreateBooked(ctx, show); err != nil {
		if err == repository.ErrDateBooked {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   "date_booked",
				"message": bookedMessage,
			})
		}
		logrus.WithError(err).Error("shows: create failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Show could not be listed."})
	}
	event := queue.ShowBookedEvent{
		ShowID:     show.ID,
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		VenueID:    venue.ID,
		VenueName:  venue.Name,
		StartTime:  show.StartTime.Format("2006-01-02 15:04:05"),
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queuepublisher.PublishShowBooked(ctx, event)
	}()
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Show was successfully listed!",
		"show":    show,
	})
}
