package database

import (
	"context"
	"database/sql"
)

// Schema statements executed at startup.  Constraint names follow the
// fk_<table>_<column>_<reftable> / uq_<table>_<columns> convention so
// violations can be traced back to a specific rule from error text.
// The unique key on (artist_id, date) is the hard guarantee against
// double-booking one artist on the same calendar date: two concurrent
// booking requests cannot both commit.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(120) NOT NULL DEFAULT '',
		city VARCHAR(120) NOT NULL DEFAULT '',
		state VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres JSON NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(500) NOT NULL DEFAULT '',
		website_link VARCHAR(500) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS artists (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL DEFAULT '',
		state VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres JSON NULL,
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(500) NOT NULL DEFAULT '',
		website_link VARCHAR(500) NOT NULL DEFAULT '',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shows (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		artist_id BIGINT UNSIGNED NOT NULL,
		venue_id BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		CONSTRAINT fk_shows_artist_id_artists FOREIGN KEY (artist_id)
			REFERENCES artists (id) ON DELETE CASCADE,
		CONSTRAINT fk_shows_venue_id_venues FOREIGN KEY (venue_id)
			REFERENCES venues (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS availabilities (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		artist_id BIGINT UNSIGNED NOT NULL,
		date DATE NOT NULL,
		status ENUM('searching','booked') NOT NULL DEFAULT 'searching',
		show_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		CONSTRAINT uq_availabilities_artist_id_date UNIQUE (artist_id, date),
		CONSTRAINT fk_availabilities_artist_id_artists FOREIGN KEY (artist_id)
			REFERENCES artists (id) ON DELETE CASCADE,
		CONSTRAINT fk_availabilities_show_id_shows FOREIGN KEY (show_id)
			REFERENCES shows (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the application tables when they do not exist yet.
// Statements are idempotent, so running Migrate on every startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
