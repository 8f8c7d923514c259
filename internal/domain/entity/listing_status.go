package entity

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusRented   ListingStatus = "rented"
	ListingStatusInactive ListingStatus = "inactive"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusActive, ListingStatusPending, ListingStatusRented, ListingStatusInactive:
		return true
	default:
		return false
	}
}

// PropertyType is the kind of property a listing offers.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeRoom       PropertyType = "room"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// String returns the string representation of the PropertyType.
func (p PropertyType) String() string {
	return string(p)
}

// IsValid checks if the PropertyType is a valid value.
func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeStudio, PropertyTypeRoom,
		PropertyTypeVilla, PropertyTypeLand, PropertyTypeCommercial:
		return true
	default:
		return false
	}
}
