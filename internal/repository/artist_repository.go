// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for artists. An Artist owns shows and
// availability slots; creation can seed initial searching slots and deletion
// cascades to both dependent tables inside a single transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// artistCols is the canonical column list scanned into a model.Artist.
const artistCols = `id, name, city, state, phone, genres, image_link,
	facebook_link, website_link, seeking_venue, seeking_description, created_at`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// scanArtist reads one artist row into a model.Artist, decoding the
// genres JSON column on the way.
func scanArtist(row interface{ Scan(dest ...any) error }) (*model.Artist, error) {
	var a model.Artist
	var genres []byte
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	if a.Genres, err = unmarshalGenres(genres); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new artist and, when dates are given, one searching
// availability slot per date. Everything runs in one transaction: a
// duplicate or otherwise invalid date rolls the artist back too, so no
// partial record is ever committed. On success the artist's ID and
// created_at fields are populated.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist, availabilityDates []time.Time) error {
	genres, err := marshalGenres(a.Genres)
	if err != nil {
		return err
	}
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
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link,
		facebook_link, website_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	const qSlot = `INSERT INTO availabilities (artist_id, date, status) VALUES (?, ?, ?)`
	for _, d := range availabilityDates {
		if _, err = tx.ExecContext(ctx, qSlot, a.ID, d.Format("2006-01-02"), model.StatusSearching); err != nil {
			if isDuplicateEntry(err) {
				err = ErrDuplicateDate
			}
			return err
		}
	}
	err = tx.QueryRowContext(ctx, `SELECT created_at FROM artists WHERE id = ?`, a.ID).Scan(&a.CreatedAt)
	return err
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist in storage order.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY id ASC`
	return r.queryArtists(ctx, q)
}

// ListRecent returns the most recently created artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY created_at DESC, id DESC LIMIT ?`
	return r.queryArtists(ctx, q, limit)
}

// Search returns all artists whose name, city or state contains the
// term as a case-insensitive substring, in storage order.
func (r *ArtistRepo) Search(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists
		WHERE LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?`
	pat := likePattern(term)
	return r.queryArtists(ctx, q, pat, pat, pat)
}

func (r *ArtistRepo) queryArtists(ctx context.Context, q string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces every editable field of the artist identified by
// a.ID. Returns ErrArtistNotFound when the row does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	genres, err := marshalGenres(a.Genres)
	if err != nil {
		return err
	}
	const qExists = `SELECT 1 FROM artists WHERE id = ? LIMIT 1`
	var one int
	if err := r.db.QueryRowContext(ctx, qExists, a.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	}
	const q = `UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
		image_link = ?, facebook_link = ?, website_link = ?,
		seeking_venue = ?, seeking_description = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription, a.ID)
	return err
}

// Delete removes an artist together with its availability slots and
// shows. The deletion occurs within a transaction so that no partial
// cleanup is left committed. If the artist does not exist,
// ErrArtistNotFound is returned.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
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
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM availabilities WHERE artist_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
