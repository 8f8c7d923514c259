package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"rentradar/config"
	deliverycontext "rentradar/internal/delivery/context"
	"rentradar/internal/domain/entity"
	domainerrors "rentradar/internal/domain/errors"
	"rentradar/internal/domain/geo"
	"rentradar/internal/domain/repository"
	"rentradar/internal/errors"
	"rentradar/internal/infra/metrics"
	"rentradar/internal/usecase"
	"rentradar/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type listingSearchService struct {
	listingRepo repository.ListingRepository
	metrics     *metrics.SearchMetrics
	config      *config.SearchConfig
	logger      *slog.Logger
}

// NewListingSearchService creates a new listing search service instance
func NewListingSearchService(
	listingRepo repository.ListingRepository,
	searchMetrics *metrics.SearchMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ListingSearchUsecase {
	searchCfg := config.DefaultSearchConfig()
	if cfg != nil && cfg.Search != nil {
		searchCopy := *cfg.Search
		searchCfg = config.WithSearchDefaults(&searchCopy)
	}

	return &listingSearchService{
		listingRepo: listingRepo,
		metrics:     searchMetrics,
		config:      searchCfg,
		logger:      logger,
	}
}

// SearchListings runs a filtered, paginated listing search
func (s *listingSearchService) SearchListings(ctx context.Context, input *usecase.ListingSearchInput) (*usecase.ListingSearchResult, error) {
	start := time.Now()

	result, err := s.searchListings(ctx, input)
	s.metrics.ObserveRequest(metrics.SearchKindFiltered, outcomeOf(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveResults(metrics.SearchKindFiltered, len(result.Listings))

	return result, nil
}

func (s *listingSearchService) searchListings(ctx context.Context, input *usecase.ListingSearchInput) (*usecase.ListingSearchResult, error) {
	if input == nil {
		input = &usecase.ListingSearchInput{}
	}

	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("minPrice must not exceed maxPrice")
	}

	page := repository.Page{Number: max(input.Page, 1), Size: s.pageSize(input.Limit)}
	filter := repository.ListingFilter{
		PropertyType: input.PropertyType,
		City:         input.City,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		MinBedrooms:  input.MinBedrooms,
	}

	if input.HasGeo() {
		ranked, err := s.rank(ctx, metrics.SearchKindFiltered, *input.Latitude, *input.Longitude, *input.RadiusKm, 0)
		if err != nil {
			return nil, err
		}

		if len(ranked) == 0 {
			return emptyPage(page), nil
		}

		filter.IDs = geo.IDs(ranked)
	}

	listings, total, err := s.listingRepo.SearchListings(ctx, filter, page)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to search listings",
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSearchUnavailable.WrapMessage("failed to search listings")
	}

	return &usecase.ListingSearchResult{
		Listings:   listings,
		Page:       page.Number,
		Limit:      page.Size,
		Total:      total,
		TotalPages: util.TotalPages(total, page.Size),
	}, nil
}

// FindNearbyListings returns searchable listings around a point, closest first
func (s *listingSearchService) FindNearbyListings(ctx context.Context, input *usecase.NearbySearchInput) (*usecase.NearbySearchResult, error) {
	start := time.Now()

	result, err := s.findNearbyListings(ctx, input)
	s.metrics.ObserveRequest(metrics.SearchKindNearby, outcomeOf(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveResults(metrics.SearchKindNearby, len(result.Listings))

	return result, nil
}

func (s *listingSearchService) findNearbyListings(ctx context.Context, input *usecase.NearbySearchInput) (*usecase.NearbySearchResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidSearchArea.WithDetails("latitude and longitude are required")
	}

	radiusKm := s.config.NearbyDefaultRadiusKm
	if input.RadiusKm != nil {
		radiusKm = *input.RadiusKm
	}

	limit := s.config.NearbyDefaultLimit
	if input.Limit != nil && *input.Limit > 0 {
		limit = min(*input.Limit, s.config.MaxPageSize)
	}

	ranked, err := s.rank(ctx, metrics.SearchKindNearby, input.Latitude, input.Longitude, radiusKm, limit)
	if err != nil {
		return nil, err
	}

	result := &usecase.NearbySearchResult{
		Listings: []*entity.NearbyListing{},
		Center:   geo.Point{Latitude: input.Latitude, Longitude: input.Longitude},
		RadiusKm: radiusKm,
	}

	if len(ranked) == 0 {
		return result, nil
	}

	listings, err := s.listingRepo.FindSearchableListingsByIDs(ctx, geo.IDs(ranked))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to load nearby listings",
			slog.Int("ids", len(ranked)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSearchUnavailable.WrapMessage("failed to load nearby listings")
	}

	byID := make(map[uuid.UUID]*entity.Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	// Listings that changed status between the scan and the fetch are dropped.
	for _, r := range ranked {
		listing, ok := byID[r.ID]
		if !ok {
			continue
		}

		result.Listings = append(result.Listings, &entity.NearbyListing{
			Listing:    listing,
			DistanceKm: r.DistanceKm,
		})
	}

	slices.SortStableFunc(result.Listings, func(a, b *entity.NearbyListing) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return result, nil
}

// GetListing retrieves a single listing by ID
func (s *listingSearchService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listing by ID")
	}

	return listing, nil
}

// rank validates the search area, fetches candidates and runs the radius scan.
func (s *listingSearchService) rank(
	ctx context.Context,
	kind metrics.SearchKind,
	lat, lng, radiusKm float64,
	limit int,
) ([]geo.Ranked[uuid.UUID], error) {
	if err := s.validateArea(lat, lng, radiusKm); err != nil {
		return nil, err
	}

	var bound *orb.Bound
	if s.config.BoundingBoxPrefilter {
		if b, ok := geo.BoundAround(lat, lng, radiusKm); ok {
			bound = &b
		}
	}

	candidates, err := s.listingRepo.FindSearchCandidates(ctx, bound)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).ErrorContext(ctx, "Failed to fetch search candidates",
			slog.String("kind", string(kind)),
			slog.Bool("bounded", bound != nil),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrSearchUnavailable.WrapMessage("failed to fetch search candidates")
	}

	s.metrics.ObserveScan(kind, len(candidates))

	return geo.FindWithinRadius(lat, lng, radiusKm, candidates, limit), nil
}

func (s *listingSearchService) validateArea(lat, lng, radiusKm float64) error {
	if err := geo.ValidatePoint(lat, lng); err != nil {
		return domainerrors.ErrInvalidSearchArea.WithDetails(err.Error())
	}

	if err := geo.ValidateRadius(radiusKm); err != nil {
		return domainerrors.ErrInvalidSearchArea.WithDetails(err.Error())
	}

	if s.config.MaxRadiusKm > 0 && radiusKm > s.config.MaxRadiusKm {
		return domainerrors.ErrInvalidSearchArea.WithDetails(
			fmt.Sprintf("radius %g km exceeds the maximum of %g km", radiusKm, s.config.MaxRadiusKm),
		)
	}

	return nil
}

func (s *listingSearchService) pageSize(limit int) int {
	if limit <= 0 {
		return s.config.DefaultPageSize
	}

	return min(limit, s.config.MaxPageSize)
}

func emptyPage(page repository.Page) *usecase.ListingSearchResult {
	return &usecase.ListingSearchResult{
		Listings: []*entity.Listing{},
		Page:     page.Number,
		Limit:    page.Size,
	}
}

func outcomeOf(err error) metrics.Outcome {
	if err == nil {
		return metrics.OutcomeOK
	}

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return metrics.OutcomeError
	}

	switch appErr.ErrorCode() {
	case domainerrors.ErrInvalidSearchArea.ErrorCode(), domainerrors.ErrValidationFailed.ErrorCode():
		return metrics.OutcomeInvalid
	case domainerrors.ErrSearchUnavailable.ErrorCode():
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
