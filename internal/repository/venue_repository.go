// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for venues. A Venue represents a
// location that can host shows. Deleting a venue removes its shows and the
// availability slots those shows had claimed, all within one transaction.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values

	"github.com/iliyamo/venue-booking/internal/model"
)

// venueCols is the canonical column list scanned into a model.Venue.
const venueCols = `id, name, address, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_talent, seeking_description, created_at`

// VenueRepo encapsulates all database queries related to venues. It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// VenueSummary is the minimal venue projection used in grouped listings.
type VenueSummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// VenueArea groups venues sharing a state/city combination, mirroring
// how the listing page presents venues by region.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// scanVenue reads one venue row into a model.Venue, decoding the genres
// JSON column on the way.
func scanVenue(row interface{ Scan(dest ...any) error }) (*model.Venue, error) {
	var v model.Venue
	var genres []byte
	err := row.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Phone, &genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if v.Genres, err = unmarshalGenres(genres); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new venue into the database. On success the venue's
// ID field is populated with the auto-generated value and a follow-up
// SELECT fills the DB-default created_at timestamp so callers receive a
// fully populated record.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	genres, err := marshalGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues (name, address, city, state, phone, genres, image_link,
		facebook_link, website_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Address, v.City, v.State, v.Phone, genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	const sel = `SELECT created_at FROM venues WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, v.ID).Scan(&v.CreatedAt)
}

// GetByID retrieves a venue by its ID. It returns ErrVenueNotFound if
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAreas returns all venues grouped by their state/city combination,
// ordered by state then city. Venues inside an area keep insertion order.
// When no venues exist it returns an empty slice and nil error.
func (r *VenueRepo) ListAreas(ctx context.Context) ([]VenueArea, error) {
	const q = `SELECT id, name, city, state FROM venues ORDER BY state ASC, city ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	areas := []VenueArea{}
	for rows.Next() {
		var s VenueSummary
		var city, state string
		if err := rows.Scan(&s.ID, &s.Name, &city, &state); err != nil {
			return nil, err
		}
		n := len(areas)
		if n == 0 || areas[n-1].City != city || areas[n-1].State != state {
			areas = append(areas, VenueArea{City: city, State: state})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return areas, nil
}

// ListRecent returns the most recently created venues, newest first.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.queryVenues(ctx, q, limit)
}

// Search returns all venues whose name, city or state contains the term
// as a case-insensitive substring, in storage order. An empty result is
// an empty slice, not an error.
func (r *VenueRepo) Search(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues
		WHERE LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?`
	pat := likePattern(term)
	return r.queryVenues(ctx, q, pat, pat, pat)
}

// queryVenues runs a multi-row venue query and scans the results.
func (r *VenueRepo) queryVenues(ctx context.Context, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces every editable field of the venue identified by v.ID.
// Edit forms submit the full field set, so no partial patch semantics
// are offered. Returns ErrVenueNotFound when the row does not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	genres, err := marshalGenres(v.Genres)
	if err != nil {
		return err
	}
	const qExists = `SELECT 1 FROM venues WHERE id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, v.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	const q = `UPDATE venues SET name = ?, address = ?, city = ?, state = ?, phone = ?,
		genres = ?, image_link = ?, facebook_link = ?, website_link = ?,
		seeking_talent = ?, seeking_description = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, q, v.Name, v.Address, v.City, v.State, v.Phone, genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription, v.ID)
	return err
}

// Delete removes a venue together with its shows and the availability
// slots claimed by those shows. The deletion occurs within a transaction
// so that no partial cleanup is left committed. If the venue does not
// exist, ErrVenueNotFound is returned.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM availabilities WHERE show_id IN (SELECT id FROM shows WHERE venue_id = ?)`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
