// Package repository contains data access logic for availability slots.
// Slots are advisory records of an artist's free or booked dates; the
// unique key on (artist_id, date) keeps at most one slot per date.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

const availabilityCols = `id, artist_id, date, status, show_id, created_at`

// AvailabilityRepo manages persistence for availability slots.
type AvailabilityRepo struct {
	db *sql.DB
}

// NewAvailabilityRepo constructs an AvailabilityRepo with the given DB handle.
func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

func scanAvailability(row interface{ Scan(dest ...any) error }) (*model.Availability, error) {
	var av model.Availability
	var showID sql.NullInt64
	err := row.Scan(&av.ID, &av.ArtistID, &av.Date, &av.Status, &showID, &av.CreatedAt)
	if err != nil {
		return nil, err
	}
	if showID.Valid {
		id := uint64(showID.Int64)
		av.ShowID = &id
	}
	return &av, nil
}

// Create inserts a new availability slot for an artist. The date must
// be unique per artist; a duplicate is reported as ErrDuplicateDate.
// On success the slot's ID and created_at fields are populated.
func (r *AvailabilityRepo) Create(ctx context.Context, av *model.Availability) error {
	const q = `INSERT INTO availabilities (artist_id, date, status, show_id) VALUES (?, ?, ?, ?)`
	var showID any
	if av.ShowID != nil {
		showID = *av.ShowID
	}
	res, err := r.db.ExecContext(ctx, q, av.ArtistID, av.Date.Format("2006-01-02"), av.Status, showID)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateDate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	av.ID = uint64(id)
	const sel = `SELECT created_at FROM availabilities WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, av.ID).Scan(&av.CreatedAt)
}

// GetByID retrieves an availability slot by its ID. It returns
// ErrAvailabilityNotFound if there is no matching row.
func (r *AvailabilityRepo) GetByID(ctx context.Context, id uint64) (*model.Availability, error) {
	const q = `SELECT ` + availabilityCols + ` FROM availabilities WHERE id = ?`
	av, err := scanAvailability(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return av, nil
}

// ListByArtist returns all availability slots for an artist ordered by
// date ascending. When none exist it returns an empty slice and nil error.
func (r *AvailabilityRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Availability, error) {
	const q = `SELECT ` + availabilityCols + ` FROM availabilities WHERE artist_id = ? ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Availability{}
	for rows.Next() {
		av, err := scanAvailability(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *av)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the date, status and show reference of the slot
// identified by av.ID. Returns ErrAvailabilityNotFound when the row
// does not exist and ErrDuplicateDate when the new date collides with
// another slot of the same artist.
func (r *AvailabilityRepo) Update(ctx context.Context, av *model.Availability) error {
	const qExists = `SELECT 1 FROM availabilities WHERE id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, av.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAvailabilityNotFound
		}
		return err
	}
	var showID any
	if av.ShowID != nil {
		showID = *av.ShowID
	}
	const q = `UPDATE availabilities SET date = ?, status = ?, show_id = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, av.Date.Format("2006-01-02"), av.Status, showID, av.ID); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateDate
		}
		return err
	}
	return nil
}

// Delete removes an availability slot. Returns ErrAvailabilityNotFound
// when no row was deleted.
func (r *AvailabilityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM availabilities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}
