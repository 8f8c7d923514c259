package usecase

import (
	"context"

	"rentradar/internal/domain/entity"
	"rentradar/internal/domain/geo"

	"github.com/google/uuid"
)

// ListingSearchInput represents the filters of a listing search.
// Nil fields are not applied. The geo filter applies only when
// Latitude, Longitude and RadiusKm are all set.
type ListingSearchInput struct {
	PropertyType *entity.PropertyType `json:"type,omitempty"`
	City         *string              `json:"city,omitempty"`
	MinPrice     *float64             `json:"min_price,omitempty"`
	MaxPrice     *float64             `json:"max_price,omitempty"`
	MinBedrooms  *int                 `json:"bedrooms,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  *float64 `json:"radius,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// HasGeo reports whether the input carries a complete geo filter.
func (in *ListingSearchInput) HasGeo() bool {
	return in.Latitude != nil && in.Longitude != nil && in.RadiusKm != nil
}

// ListingSearchResult is one page of a listing search.
type ListingSearchResult struct {
	Listings   []*entity.Listing `json:"listings"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// NearbySearchInput represents a standalone nearby query.
// Nil RadiusKm and Limit fall back to the configured defaults.
type NearbySearchInput struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  *float64 `json:"radius,omitempty"`
	Limit     *int     `json:"limit,omitempty"`
}

// NearbySearchResult holds listings ordered by distance from Center.
type NearbySearchResult struct {
	Listings []*entity.NearbyListing `json:"listings"`
	Center   geo.Point               `json:"center"`
	RadiusKm float64                 `json:"radius"`
}

// ListingSearchUsecase defines the interface for listing search use cases
type ListingSearchUsecase interface {
	// SearchListings runs a filtered, paginated search. When a geo filter is
	// present the radius scan narrows the candidate IDs before the other filters apply.
	SearchListings(ctx context.Context, input *ListingSearchInput) (*ListingSearchResult, error)

	// FindNearbyListings returns the closest searchable listings annotated with their distance.
	FindNearbyListings(ctx context.Context, input *NearbySearchInput) (*NearbySearchResult, error)

	// GetListing returns a single listing.
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
}
