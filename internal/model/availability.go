package model

import "time"

// Availability status values.  A slot starts out as searching and
// becomes booked once a show is created on its date.
const (
	StatusSearching = "searching"
	StatusBooked    = "booked"
)

// Availability represents a calendar date on which an artist has
// declared willingness to perform.  Once a show is booked on that
// date the slot transitions to booked and references the show.
// This struct corresponds to a row in the `availabilities` table.
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – artist owning the slot.
//  Date      – calendar date of the slot (time part is zero).
//  Status    – searching or booked.
//  ShowID    – show fulfilling the slot (nil while searching).
//  CreatedAt – creation timestamp.
type Availability struct {
	ID        uint64    `json:"id"`         // availabilities.id
	ArtistID  uint64    `json:"artist_id"`  // availabilities.artist_id
	Date      time.Time `json:"date"`       // availabilities.date (DATE column)
	Status    string    `json:"status"`     // availabilities.status
	ShowID    *uint64   `json:"show_id"`    // availabilities.show_id (nullable)
	CreatedAt time.Time `json:"created_at"` // availabilities.created_at
}
