package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// recentLimit is how many venues and artists the landing payload shows.
const recentLimit = 10

// Recent handles GET /v1/recent and returns the latest listed venues
// and artists, newest first.
func (h *Handler) Recent(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.VenueRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		logrus.WithError(err).Error("recent: list venues failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	artists, err := h.ArtistRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		logrus.WithError(err).Error("recent: list artists failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues, "artists": artists})
}
