package model

import "time"

// Artist represents a performer who can play shows and declare
// availability dates.  Artists own their shows and availability
// slots; deleting an artist removes both.  This struct corresponds
// to a row in the `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist.
//  City               – home city.
//  State              – state or region code.
//  Phone              – contact phone number.
//  Genres             – genre tags, stored as a JSON array.
//  ImageLink          – URL of the artist's image.
//  FacebookLink       – URL of the artist's Facebook page.
//  WebsiteLink        – URL of the artist's website.
//  SeekingVenue       – whether the artist is looking for venues.
//  SeekingDescription – free text shown when seeking a venue.
//  CreatedAt          – creation timestamp.
type Artist struct {
	ID                 uint64    `json:"id"`                  // artists.id
	Name               string    `json:"name"`                // artists.name
	City               string    `json:"city"`                // artists.city
	State              string    `json:"state"`               // artists.state
	Phone              string    `json:"phone"`               // artists.phone
	Genres             []string  `json:"genres"`              // artists.genres (JSON column)
	ImageLink          string    `json:"image_link"`          // artists.image_link
	FacebookLink       string    `json:"facebook_link"`       // artists.facebook_link
	WebsiteLink        string    `json:"website_link"`        // artists.website_link
	SeekingVenue       bool      `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string    `json:"seeking_description"` // artists.seeking_description
	CreatedAt          time.Time `json:"created_at"`          // artists.created_at
}
