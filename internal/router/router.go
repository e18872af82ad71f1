// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no application state on the
// provided Echo instance. Currently it exposes only the health check,
// which load balancers and monitoring systems use to verify the service
// is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the listing and booking endpoints under /v1.
//
// The cache middleware is applied only to the static listing routes.
// Detail routes compute past/upcoming show partitions relative to the
// current instant and must never serve cached payloads, so they are
// registered outside the cached group.
func RegisterAPI(e *echo.Echo, h *handler.Handler, cache echo.MiddlewareFunc) {
	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	// Static listings: safe to cache briefly.
	cached := e.Group("/v1", cache)
	cached.GET("/recent", h.Recent)
	cached.GET("/venues", h.ListVenues)
	cached.GET("/artists", h.ListArtists)

	v1 := e.Group("/v1")

	// Venues
	v1.GET("/venues/:id", h.GetVenue)
	v1.POST("/venues/search", h.SearchVenues)
	v1.POST("/venues", h.CreateVenue)
	v1.PUT("/venues/:id", h.UpdateVenue)
	v1.DELETE("/venues/:id", h.DeleteVenue)

	// Artists
	v1.GET("/artists/:id", h.GetArtist)
	v1.POST("/artists/search", h.SearchArtists)
	v1.POST("/artists", h.CreateArtist)
	v1.PUT("/artists/:id", h.UpdateArtist)
	v1.DELETE("/artists/:id", h.DeleteArtist)

	// Shows: listing plus the booking path.
	v1.GET("/shows", h.ListShows)
	v1.POST("/shows", h.CreateShow)

	// Availability slots, nested under their artist.
	av := v1.Group("/artists/:id/availabilities")
	av.GET("", h.ListAvailabilities)
	av.POST("", h.CreateAvailability)
	av.GET("/:availability_id", h.GetAvailability)
	av.PUT("/:availability_id", h.UpdateAvailability)
	av.DELETE("/:availability_id", h.DeleteAvailability)
}
