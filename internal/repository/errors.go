// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrDateBooked signals that a booking cannot proceed because
// the artist already holds an availability slot on the requested date,
// while the *NotFound values map to HTTP 404 responses.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show cannot be found in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrAvailabilityNotFound is returned when an availability slot cannot
// be found in the DB.
var ErrAvailabilityNotFound = errors.New("availability not found")

// ErrDateBooked is returned when a show-creation request targets a
// calendar date for which the artist already has an availability slot.
// Handlers should translate this into an HTTP 409 response; the show
// must not be persisted.
var ErrDateBooked = errors.New("date already booked")

// ErrDuplicateDate is returned when an availability slot is created for
// an artist/date combination that already exists. It is backed by the
// uq_availabilities_artist_id_date unique key.
var ErrDuplicateDate = errors.New("availability date already exists")
