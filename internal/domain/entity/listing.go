// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"rentradar/internal/domain/geo"

	"github.com/google/uuid"
)

// Listing is a property offered on the marketplace.
type Listing struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	PropertyType PropertyType  `json:"property_type"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Bedrooms     int           `json:"bedrooms"`
	Bathrooms    int           `json:"bathrooms"`
	City         string        `json:"city"`
	Address      string        `json:"address"`
	Latitude     *float64      `json:"latitude"`  // nil when the listing is not geotagged
	Longitude    *float64      `json:"longitude"` // nil when the listing is not geotagged
	Status       ListingStatus `json:"status"`
	IsAvailable  bool          `json:"is_available"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Geotagged reports whether the listing has both coordinates.
func (l *Listing) Geotagged() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Searchable reports whether the listing may appear in search results.
func (l *Listing) Searchable() bool {
	return l.Status == ListingStatusActive && l.IsAvailable
}

// Candidate projects the listing for a radius scan.
func (l *Listing) Candidate() geo.Candidate[uuid.UUID] {
	return geo.Candidate[uuid.UUID]{
		ID:        l.ID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

// NearbyListing is a listing annotated with its distance from a search center.
// The distance is computed per query and never stored.
type NearbyListing struct {
	*Listing
	DistanceKm float64 `json:"distance"`
}
