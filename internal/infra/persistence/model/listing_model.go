package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
type ListingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	PropertyType string    `gorm:"type:varchar(32);not null;index:idx_listings_on_type"`
	Price        float64   `gorm:"type:decimal(14,2);not null"`
	Currency     string    `gorm:"type:varchar(3);not null;default:'XAF'"`
	Bedrooms     int       `gorm:"not null;default:0"`
	Bathrooms    int       `gorm:"not null;default:0"`
	City         string    `gorm:"type:varchar(100);not null;index:idx_listings_on_city"`
	Address      string    `gorm:"type:text;not null;default:''"`
	Latitude     *float64  `gorm:"type:decimal(10,8);index:idx_listings_on_coordinates"`
	Longitude    *float64  `gorm:"type:decimal(11,8);index:idx_listings_on_coordinates"`
	Status       string    `gorm:"type:varchar(32);not null;default:'active';index:idx_listings_on_searchable"`
	IsAvailable  bool      `gorm:"not null;default:true;index:idx_listings_on_searchable"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// ListingCandidateModel is the coordinate-only projection read by radius scans.
type ListingCandidateModel struct {
	ID        uuid.UUID
	Latitude  *float64
	Longitude *float64
}
