package handler // handler defines http handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/repository"
)

// Handler bundles the repositories behind the listing and booking
// endpoints. All handlers hang off this one struct since every page
// composes data from more than one table.
type Handler struct {
	VenueRepo        *repository.VenueRepo        // VenueRepo provides venue persistence
	ArtistRepo       *repository.ArtistRepo       // ArtistRepo provides artist persistence
	ShowRepo         *repository.ShowRepo         // ShowRepo provides show persistence and booking
	AvailabilityRepo *repository.AvailabilityRepo // AvailabilityRepo provides availability persistence
}

// New constructs a Handler and panics if any dependency is nil.
func New(venueRepo *repository.VenueRepo, artistRepo *repository.ArtistRepo, showRepo *repository.ShowRepo, availabilityRepo *repository.AvailabilityRepo) *Handler {
	if venueRepo == nil || artistRepo == nil || showRepo == nil || availabilityRepo == nil {
		panic("nil repository passed to handler.New")
	}
	return &Handler{
		VenueRepo:        venueRepo,
		ArtistRepo:       artistRepo,
		ShowRepo:         showRepo,
		AvailabilityRepo: availabilityRepo,
	}
}

// errInvalidID reports an unparsable numeric path parameter.
var errInvalidID = errors.New("invalid id")

// paramID parses a numeric path parameter into a uint64.
func paramID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// parseFlag interprets the seeking checkbox value. HTML forms submit
// the literal 'y' when checked and omit the field otherwise; JSON
// clients may send "true" or "1".
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1", "on":
		return true
	}
	return false
}

// timestampLayouts are accepted for show start times. The DB layout
// comes first because that is what the original forms submitted.
var timestampLayouts = []string{"2006-01-02 15:04:05", time.RFC3339}

// parseTimestamp parses a show start time in any accepted layout.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// dateLayouts are accepted for availability dates. The legacy US form
// layout is kept for compatibility with old clients.
var dateLayouts = []string{"2006-01-02", "01/02/2006"}

// parseDate parses a calendar date in any accepted layout.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
