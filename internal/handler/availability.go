// This file implements the availability endpoints nested under an
// artist. Slots record the dates an artist is free (searching) or
// already playing (booked, linked to a show).
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// availabilityForm is the typed input contract for availability
// create/edit submissions. Status defaults to searching; show_id is
// the optional show fulfilling the slot.
type availabilityForm struct {
	Date   string `json:"date" form:"date"`
	Status string `json:"status" form:"status"`
	ShowID string `json:"show_id" form:"show_id"`
}

// toModel validates and converts the form into a model.Availability for
// the given artist. The returned message is empty on success.
func (f *availabilityForm) toModel(artistID uint64) (*model.Availability, string) {
	if strings.TrimSpace(f.Date) == "" {
		return nil, "date is required"
	}
	date, err := parseDate(f.Date)
	if err != nil {
		return nil, "invalid date format"
	}
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status == "" {
		status = model.StatusSearching
	}
	if status != model.StatusSearching && status != model.StatusBooked {
		return nil, "invalid status"
	}
	av := &model.Availability{ArtistID: artistID, Date: date, Status: status}
	if s := strings.TrimSpace(f.ShowID); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, "invalid show_id"
		}
		av.ShowID = &id
	}
	return av, ""
}

// requireArtist loads the artist referenced by the :id path parameter,
// writing the error response itself when that fails. Callers stop when
// the returned artist is nil.
func (h *Handler) requireArtist(c echo.Context) *model.Artist {
	id, err := paramID(c, "id")
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return nil
	}
	artist, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		} else {
			logrus.WithError(err).Error("availabilities: verify artist failed")
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return nil
	}
	return artist
}

// ListAvailabilities handles GET /v1/artists/:id/availabilities.
func (h *Handler) ListAvailabilities(c echo.Context) error {
	artist := h.requireArtist(c)
	if artist == nil {
		return nil
	}
	slots, err := h.AvailabilityRepo.ListByArtist(c.Request().Context(), artist.ID)
	if err != nil {
		logrus.WithError(err).Error("availabilities: list failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": slots})
}

// CreateAvailability handles POST /v1/artists/:id/availabilities.
func (h *Handler) CreateAvailability(c echo.Context) error {
	artist := h.requireArtist(c)
	if artist == nil {
		return nil
	}
	var form availabilityForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	av, msg := form.toModel(artist.ID)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.AvailabilityRepo.Create(c.Request().Context(), av); err != nil {
		if err == repository.ErrDuplicateDate {
			return c.JSON(http.StatusConflict, echo.Map{"error": "availability date already exists for this artist"})
		}
		logrus.WithError(err).Error("availabilities: create failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Availability could not be listed."})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Availability for artist " + artist.Name + " was successfully listed!",
		"availability": av,
	})
}

// GetAvailability handles GET /v1/artists/:id/availabilities/:availability_id.
// The slot must belong to the artist in the path.
func (h *Handler) GetAvailability(c echo.Context) error {
	artist := h.requireArtist(c)
	if artist == nil {
		return nil
	}
	av, ok := h.loadArtistSlot(c, artist.ID)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, av)
}

// UpdateAvailability handles PUT /v1/artists/:id/availabilities/:availability_id
// with full field replacement.
func (h *Handler) UpdateAvailability(c echo.Context) error {
	artist := h.requireArtist(c)
	if artist == nil {
		return nil
	}
	cur, ok := h.loadArtistSlot(c, artist.ID)
	if !ok {
		return nil
	}
	var form availabilityForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	av, msg := form.toModel(artist.ID)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	av.ID = cur.ID
	if err := h.AvailabilityRepo.Update(c.Request().Context(), av); err != nil {
		switch err {
		case repository.ErrAvailabilityNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "availability not found"})
		case repository.ErrDuplicateDate:
			return c.JSON(http.StatusConflict, echo.Map{"error": "availability date already exists for this artist"})
		}
		logrus.WithError(err).Error("availabilities: update failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Availability could not be updated."})
	}
	fresh, err := h.AvailabilityRepo.GetByID(c.Request().Context(), av.ID)
	if err != nil {
		logrus.WithError(err).Error("availabilities: reload failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Availability was successfully updated!",
		"availability": fresh,
	})
}

// DeleteAvailability handles DELETE /v1/artists/:id/availabilities/:availability_id.
func (h *Handler) DeleteAvailability(c echo.Context) error {
	artist := h.requireArtist(c)
	if artist == nil {
		return nil
	}
	av, ok := h.loadArtistSlot(c, artist.ID)
	if !ok {
		return nil
	}
	if err := h.AvailabilityRepo.Delete(c.Request().Context(), av.ID); err != nil {
		if err == repository.ErrAvailabilityNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "availability not found"})
		}
		logrus.WithError(err).Error("availabilities: delete failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Availability could not be deleted."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Availability was successfully deleted!"})
}

// loadArtistSlot reads the :availability_id slot and checks it belongs
// to the given artist, writing the error response itself on failure.
func (h *Handler) loadArtistSlot(c echo.Context, artistID uint64) (*model.Availability, bool) {
	slotID, err := paramID(c, "availability_id")
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid availability_id"})
		return nil, false
	}
	av, err := h.AvailabilityRepo.GetByID(c.Request().Context(), slotID)
	if err != nil {
		if err == repository.ErrAvailabilityNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "availability not found"})
		} else {
			logrus.WithError(err).Error("availabilities: load failed")
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return nil, false
	}
	if av.ArtistID != artistID {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "availability not found"})
		return nil, false
	}
	return av, true
}
