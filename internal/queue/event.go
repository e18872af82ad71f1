// Package queue defines message payloads exchanged over the message broker.
package queue

// ShowBookedEvent is published when a show is successfully booked. It
// contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type ShowBookedEvent struct {
	ShowID     uint64 `json:"show_id"`
	ArtistID   uint64 `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	VenueID    uint64 `json:"venue_id"`
	VenueName  string `json:"venue_name"`
	StartTime  string `json:"start_time"`
	BookedAt   string `json:"booked_at"`
}
