// Package repository contains data access logic for show operations. This
// file defines the booking path: creating a show claims the artist's
// calendar date, and the listing queries join the counterpart entity so
// pages can render past/upcoming sections without further lookups.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ShowDetail is a flat join row used by the global show listing. It
// carries both sides of the booking plus the start time.
type ShowDetail struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShowRow is a show seen from a venue page: the counterpart is the
// performing artist.
type VenueShowRow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShowRow is a show seen from an artist page: the counterpart is
// the hosting venue.
type ArtistShowRow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// CreateBooked inserts a new show after verifying that the artist's
// calendar date is free. The whole sequence runs in one transaction:
//
//  1. The artist's availability row for the show's date is read with a
//     locking SELECT. Any existing slot, searching or booked, means the
//     date is taken and ErrDateBooked is returned without writing.
//  2. The show is inserted.
//  3. A booked availability slot linked to the new show is inserted, so
//     a successful booking always leaves the date claimed.
//
// The unique key on (artist_id, date) backs the check: if two requests
// race past step 1, the second insert fails and is reported as
// ErrDateBooked, and its transaction rolls back leaving no show row.
func (r *ShowRepo) CreateBooked(ctx context.Context, s *model.Show) error {
	date := s.StartTime.Format("2006-01-02")
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var slotID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM availabilities WHERE artist_id = ? AND date = ? FOR UPDATE`,
		s.ArtistID, date,
	).Scan(&slotID)
	if err == nil {
		err = ErrDateBooked
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`,
		s.ArtistID, s.VenueID, s.StartTime.Format("2006-01-02 15:04:05"))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO availabilities (artist_id, date, status, show_id) VALUES (?, ?, ?, ?)`,
		s.ArtistID, date, model.StatusBooked, s.ID); err != nil {
		if isDuplicateEntry(err) {
			err = ErrDateBooked
		}
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT created_at FROM shows WHERE id = ?`, s.ID).Scan(&s.CreatedAt)
	return err
}

// GetByID retrieves a show by its ID. It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, artist_id, venue_id, start_time, created_at FROM shows WHERE id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListDetailed returns every show joined with its venue and artist,
// ordered by start time ascending. When no shows exist it returns an
// empty slice and nil error.
func (r *ShowRepo) ListDetailed(ctx context.Context) ([]ShowDetail, error) {
	const q = `SELECT v.id, v.name, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []ShowDetail{}
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByVenue returns all shows hosted by a venue joined with the
// performing artist, ordered by start time ascending.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]VenueShowRow, error) {
	const q = `SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = ?
		ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []VenueShowRow{}
	for rows.Next() {
		var v VenueShowRow
		if err := rows.Scan(&v.ArtistID, &v.ArtistName, &v.ArtistImageLink, &v.StartTime); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByArtist returns all shows played by an artist joined with the
// hosting venue, ordered by start time ascending.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ArtistShowRow, error) {
	const q = `SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = ?
		ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []ArtistShowRow{}
	for rows.Next() {
		var a ArtistShowRow
		if err := rows.Scan(&a.VenueID, &a.VenueName, &a.VenueImageLink, &a.StartTime); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
