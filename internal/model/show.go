package model

import "time"

// Show represents a scheduled performance linking exactly one
// artist to exactly one venue at a start time.  Creating a show is
// the booking operation: it is rejected when the artist already has
// an availability slot on the same calendar date.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – artist performing the show.
//  VenueID   – venue hosting the show.
//  StartTime – when the show begins.
//  CreatedAt – creation timestamp.
type Show struct {
	ID        uint64    `json:"id"`         // shows.id
	ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
	VenueID   uint64    `json:"venue_id"`   // shows.venue_id
	StartTime time.Time `json:"start_time"` // shows.start_time
	CreatedAt time.Time `json:"created_at"` // shows.created_at
}
