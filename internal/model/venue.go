package model

import "time"

// Venue represents a location that can host shows.  Venues are
// created through the listing form and may declare that they are
// actively seeking talent.  This struct corresponds to a row in
// the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  Address            – street address.
//  City               – city the venue is located in.
//  State              – state or region code.
//  Phone              – contact phone number.
//  Genres             – genre tags, stored as a JSON array.
//  ImageLink          – URL of the venue's image.
//  FacebookLink       – URL of the venue's Facebook page.
//  WebsiteLink        – URL of the venue's website.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when seeking talent.
//  CreatedAt          – creation timestamp.
type Venue struct {
	ID                 uint64    `json:"id"`                  // venues.id
	Name               string    `json:"name"`                // venues.name
	Address            string    `json:"address"`             // venues.address
	City               string    `json:"city"`                // venues.city
	State              string    `json:"state"`               // venues.state
	Phone              string    `json:"phone"`               // venues.phone
	Genres             []string  `json:"genres"`              // venues.genres (JSON column)
	ImageLink          string    `json:"image_link"`          // venues.image_link
	FacebookLink       string    `json:"facebook_link"`       // venues.facebook_link
	WebsiteLink        string    `json:"website_link"`        // venues.website_link
	SeekingTalent      bool      `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string    `json:"seeking_description"` // venues.seeking_description
	CreatedAt          time.Time `json:"created_at"`          // venues.created_at
}
