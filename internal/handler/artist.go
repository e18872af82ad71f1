// This file implements the artist endpoints. Artist creation may seed
// initial availability dates; the artist page additionally exposes the
// artist's availability slots next to the past/upcoming show partition.
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// artistForm is the typed input contract for artist create/edit
// submissions. The optional availabilities list only applies on create;
// each date becomes a searching slot for the new artist.
type artistForm struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	SeekingVenue       string   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
	Availabilities     []string `json:"availabilities" form:"availabilities"`
}

func (f *artistForm) toModel() *model.Artist {
	return &model.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       parseFlag(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

// ArtistDetail is the artist page payload: the artist itself, its shows
// split into past and upcoming buckets with counts, and its declared
// availability slots.
type ArtistDetail struct {
	model.Artist
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
	Availabilities     []model.Availability       `json:"availabilities"`
}

// ListArtists handles GET /v1/artists and returns every artist.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		logrus.WithError(err).Error("artists: list failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": artists})
}

// GetArtist handles GET /v1/artists/:id. The past/upcoming split is
// computed fresh on every request.
func (h *Handler) GetArtist(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	artist, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		logrus.WithError(err).Error("artists: load failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.ShowRepo.ListByArtist(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("artists: load shows failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	slots, err := h.AvailabilityRepo.ListByArtist(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("artists: load availabilities failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := partitionShows(shows, func(s repository.ArtistShowRow) time.Time { return s.StartTime }, time.Now())
	return c.JSON(http.StatusOK, ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
		Availabilities:     slots,
	})
}

// SearchArtists handles POST /v1/artists/search, matching the term
// case-insensitively against artist name, city and state.
func (h *Handler) SearchArtists(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term" form:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artists, err := h.ArtistRepo.Search(c.Request().Context(), body.SearchTerm)
	if err != nil {
		logrus.WithError(err).Error("artists: search failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(artists), "data": artists})
}

// CreateArtist handles POST /v1/artists. When availability dates are
// submitted alongside the artist, each becomes a searching slot; an
// invalid or duplicate date fails the whole submission so no partial
// artist record is committed.
func (h *Handler) CreateArtist(c echo.Context) error {
	var form artistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artist := form.toModel()
	if artist.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	dates := make([]time.Time, 0, len(form.Availabilities))
	for _, raw := range form.Availabilities {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		d, err := parseDate(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid availability date: " + raw})
		}
		dates = append(dates, d)
	}
	if err := h.ArtistRepo.Create(c.Request().Context(), artist, dates); err != nil {
		if err == repository.ErrDuplicateDate {
			return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate availability date"})
		}
		logrus.WithError(err).Error("artists: create failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Artist " + artist.Name + " could not be listed."})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Artist " + artist.Name + " was successfully listed!",
		"artist":  artist,
	})
}

// UpdateArtist handles PUT /v1/artists/:id with full field replacement.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form artistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	artist := form.toModel()
	if artist.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	artist.ID = id
	if err := h.ArtistRepo.Update(c.Request().Context(), artist); err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		logrus.WithError(err).Error("artists: update failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Artist could not be updated."})
	}
	fresh, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		logrus.WithError(err).Error("artists: reload failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Artist " + fresh.Name + " was successfully updated!",
		"artist":  fresh,
	})
}

// DeleteArtist handles DELETE /v1/artists/:id. The artist's shows and
// availability slots are removed in the same transaction.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ArtistRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		logrus.WithError(err).Error("artists: delete failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Artist could not be deleted."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Artist was successfully deleted!"})
}
