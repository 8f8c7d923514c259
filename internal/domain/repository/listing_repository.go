// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"rentradar/internal/domain/entity"
	"rentradar/internal/domain/geo"
	"rentradar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingFilter narrows a listing search. Nil fields are not applied.
type ListingFilter struct {
	PropertyType *entity.PropertyType
	City         *string
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int

	// IDs restricts the search to the given listings when non-nil.
	// An empty non-nil slice matches nothing.
	IDs []uuid.UUID
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// FindSearchCandidates returns the coordinate projection of every active,
	// available, geotagged listing, ordered by creation time then ID.
	// When bound is non-nil only listings inside the box are returned.
	FindSearchCandidates(ctx context.Context, bound *orb.Bound) ([]geo.Candidate[uuid.UUID], error)

	// SearchListings returns one page of active, available listings matching the
	// filter, newest first, along with the total number of matches.
	SearchListings(ctx context.Context, filter ListingFilter, page Page) ([]*entity.Listing, int64, error)

	// FindSearchableListingsByIDs returns the active, available listings among ids.
	// Missing or no longer searchable IDs are skipped. Order is unspecified.
	FindSearchableListingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error)

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// CreateListings persists new listings.
	CreateListings(ctx context.Context, listings []*entity.Listing) error
}
