// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"rentradar/internal/domain/entity"
	domainerrors "rentradar/internal/domain/errors"
	"rentradar/internal/domain/geo"
	"rentradar/internal/domain/repository"
	"rentradar/internal/errors"
	"rentradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// searchable scopes a query to listings that may appear in search results.
func searchable(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND is_available = ?", entity.ListingStatusActive.String(), true)
}

// FindSearchCandidates returns the coordinate projection of every searchable, geotagged listing.
func (repo *listingRepository) FindSearchCandidates(ctx context.Context, bound *orb.Bound) ([]geo.Candidate[uuid.UUID], error) {
	var rows []model.ListingCandidateModel

	if err := candidatesQuery(repo.db.WithContext(ctx), bound).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find search candidates")
	}

	candidates := make([]geo.Candidate[uuid.UUID], 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, geo.Candidate[uuid.UUID]{
			ID:        row.ID,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}

	return candidates, nil
}

// SearchListings returns one page of searchable listings matching the filter.
func (repo *listingRepository) SearchListings(ctx context.Context, filter repository.ListingFilter, page repository.Page) ([]*entity.Listing, int64, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []*entity.Listing{}, 0, nil
	}

	query := listingsQuery(repo.db.WithContext(ctx), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}

	if total == 0 {
		return []*entity.Listing{}, 0, nil
	}

	var listingModels []*model.ListingModel
	if err := listingsPage(query, page).Find(&listingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search listings")
	}

	return toListingDomains(listingModels), total, nil
}

// FindSearchableListingsByIDs returns the searchable listings among ids.
func (repo *listingRepository) FindSearchableListingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error) {
	if len(ids) == 0 {
		return []*entity.Listing{}, nil
	}

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Scopes(searchable).
		Where("id = ANY(?::uuid[])", uuidArray(ids)).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by IDs")
	}

	return toListingDomains(listingModels), nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// CreateListings persists new listings in a single multi-row insert.
func (repo *listingRepository) CreateListings(ctx context.Context, listings []*entity.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	listingModels := make([]*model.ListingModel, 0, len(listings))
	for _, listing := range listings {
		listingModels = append(listingModels, fromListingDomain(listing))
	}

	if err := repo.db.WithContext(ctx).Create(&listingModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("listing ID already exists")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrImportFailed.WrapMessage("missing or invalid listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listings")
	}

	for idx, listingM := range listingModels {
		listings[idx].ID = listingM.ID
		listings[idx].CreatedAt = listingM.CreatedAt
		listings[idx].UpdatedAt = listingM.UpdatedAt
	}

	return nil
}

func candidatesQuery(db *gorm.DB, bound *orb.Bound) *gorm.DB {
	query := db.Model(&model.ListingModel{}).
		Scopes(searchable).
		Select("id", "latitude", "longitude").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL")

	if bound != nil {
		query = query.
			Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
			Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
	}

	// Input order is the tie-break for equal distances, so it must be stable.
	return query.Order("created_at ASC").Order("id ASC")
}

func listingsQuery(db *gorm.DB, filter repository.ListingFilter) *gorm.DB {
	query := db.Model(&model.ListingModel{}).Scopes(searchable)

	if filter.IDs != nil {
		query = query.Where("id = ANY(?::uuid[])", uuidArray(filter.IDs))
	}
	if filter.PropertyType != nil {
		query = query.Where("property_type = ?", filter.PropertyType.String())
	}
	if filter.City != nil {
		query = query.Where("LOWER(city) = LOWER(?)", *filter.City)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *filter.MinBedrooms)
	}

	return query
}

func listingsPage(query *gorm.DB, page repository.Page) *gorm.DB {
	return query.
		Order("created_at DESC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size)
}

// uuidArray renders ids as one uuid[] literal. A radius scan can match more
// listings than PostgreSQL allows bind parameters, so the set is sent as a
// single value instead of an expanded IN list.
func uuidArray(ids []uuid.UUID) string {
	var b strings.Builder
	b.Grow(len(ids)*37 + 2)

	b.WriteByte('{')
	for idx, id := range ids {
		if idx > 0 {
			b.WriteByte(',')
		}
		b.WriteString(id.String())
	}
	b.WriteByte('}')

	return b.String()
}

// --- Mapper Functions ---

func toListingDomains(listingModels []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		PropertyType: entity.PropertyType(data.PropertyType),
		Price:        data.Price,
		Currency:     data.Currency,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		City:         data.City,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Status:       entity.ListingStatus(data.Status),
		IsAvailable:  data.IsAvailable,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		PropertyType: data.PropertyType.String(),
		Price:        data.Price,
		Currency:     data.Currency,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		City:         data.City,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Status:       data.Status.String(),
		IsAvailable:  data.IsAvailable,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
