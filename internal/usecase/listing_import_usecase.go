package usecase

import (
	"context"

	"rentradar/internal/domain/entity"
)

// ListingFeed streams listings from an import source in batches.
type ListingFeed interface {
	Stream(ctx context.Context, source string, batchSize int, fn func(batch []*entity.Listing) error) (int, error)
}

// ImportSummary reports the outcome of a listing import.
type ImportSummary struct {
	Source     string `json:"source"`
	Imported   int    `json:"imported"`
	Geotagged  int    `json:"geotagged"`
	Searchable int    `json:"searchable"`
}

// ListingImportUsecase defines the interface for bulk listing imports
type ListingImportUsecase interface {
	// ImportListings loads every listing from source inside a single transaction.
	ImportListings(ctx context.Context, source string) (*ImportSummary, error)
}
