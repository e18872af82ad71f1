// Package handler exposes the HTTP endpoints of the listing service.
// This file implements the venue endpoints: grouped listing, detail with
// past/upcoming show partitions, search, create, edit and delete. The
// message fields in mutation responses carry the human-readable
// confirmation the original flash messages displayed; each mutation
// produces exactly one message, success or failure, never both.
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

// venueForm is the typed input contract for venue create/edit
// submissions. Seeking flags arrive as the literal 'y' from HTML
// checkboxes; genres is multi-valued.
type venueForm struct {
	Name               string   `json:"name" form:"name"`
	Address            string   `json:"address" form:"address"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	SeekingTalent      string   `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

func (f *venueForm) toModel() *model.Venue {
	return &model.Venue{
		Name:               strings.TrimSpace(f.Name),
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      parseFlag(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

// VenueDetail is the venue page payload: the venue itself plus its
// shows split into past and upcoming buckets with counts.
type VenueDetail struct {
	model.Venue
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
}

// ListVenues handles GET /v1/venues and returns venues grouped by
// state/city area.
func (h *Handler) ListVenues(c echo.Context) error {
	areas, err := h.VenueRepo.ListAreas(c.Request().Context())
	if err != nil {
		logrus.WithError(err).Error("venues: list areas failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// GetVenue handles GET /v1/venues/:id and returns the venue with its
// shows partitioned into past and upcoming relative to the current
// instant. The split is computed fresh on every request.
func (h *Handler) GetVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	venue, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		logrus.WithError(err).Error("venues: load failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.ShowRepo.ListByVenue(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("venues: load shows failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := partitionShows(shows, func(s repository.VenueShowRow) time.Time { return s.StartTime }, time.Now())
	return c.JSON(http.StatusOK, VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// SearchVenues handles POST /v1/venues/search. The search term is
// matched case-insensitively against venue name, city and state. An
// empty result set is a valid zero-count response.
func (h *Handler) SearchVenues(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term" form:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venues, err := h.VenueRepo.Search(c.Request().Context(), body.SearchTerm)
	if err != nil {
		logrus.WithError(err).Error("venues: search failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(venues), "data": venues})
}

// CreateVenue handles POST /v1/venues and lists a new venue.
func (h *Handler) CreateVenue(c echo.Context) error {
	var form venueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venue := form.toModel()
	if venue.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if err := h.VenueRepo.Create(c.Request().Context(), venue); err != nil {
		logrus.WithError(err).Error("venues: create failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Venue " + venue.Name + " could not be listed."})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Venue " + venue.Name + " was successfully listed!",
		"venue":   venue,
	})
}

// UpdateVenue handles PUT /v1/venues/:id. Edit submissions replace the
// full editable field set; there are no partial patch semantics.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form venueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	venue := form.toModel()
	if venue.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	venue.ID = id
	if err := h.VenueRepo.Update(c.Request().Context(), venue); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		logrus.WithError(err).Error("venues: update failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Venue could not be updated."})
	}
	fresh, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		logrus.WithError(err).Error("venues: reload failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Venue " + fresh.Name + " was successfully updated!",
		"venue":   fresh,
	})
}

// DeleteVenue handles DELETE /v1/venues/:id. Dependent shows and the
// availability slots they claimed are removed in the same transaction.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		logrus.WithError(err).Error("venues: delete failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Venue could not be deleted."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Venue was successfully deleted!"})
}
