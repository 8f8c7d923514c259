package impl

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"rentradar/config"
	"rentradar/internal/domain/entity"
	domainerrors "rentradar/internal/domain/errors"
	"rentradar/internal/domain/geo"
	"rentradar/internal/domain/repository"
	"rentradar/internal/errors"
	"rentradar/internal/infra/metrics"
	mockRepo "rentradar/internal/mocks/repository"
	"rentradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Douala, Bonanjo
const (
	centerLat = 4.0511
	centerLng = 9.7679
)

var (
	idA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	idD = uuid.MustParse("00000000-0000-0000-0000-00000000000d")
)

func ptr[T any](v T) *T {
	return &v
}

func candidate(id uuid.UUID, lat, lng float64) geo.Candidate[uuid.UUID] {
	return geo.Candidate[uuid.UUID]{ID: id, Latitude: ptr(lat), Longitude: ptr(lng)}
}

// doualaCandidates returns A (~6.8 km), B (~5 km) and C (~660 km) from the center.
func doualaCandidates() []geo.Candidate[uuid.UUID] {
	return []geo.Candidate[uuid.UUID]{
		candidate(idA, 4.0469, 9.7069),
		candidate(idB, 4.0614, 9.7244),
		candidate(idC, 10.0, 10.0),
	}
}

func testSearchConfig() *config.Config {
	return &config.Config{Search: config.DefaultSearchConfig()}
}

func newTestSearchService(t *testing.T, cfg *config.Config) (usecase.ListingSearchUsecase, *mockRepo.MockListingRepository) {
	t.Helper()

	listingRepo := mockRepo.NewMockListingRepository(t)
	searchMetrics := metrics.NewSearchMetrics(prometheus.NewRegistry())
	service := NewListingSearchService(listingRepo, searchMetrics, cfg, slog.New(slog.DiscardHandler))

	return service, listingRepo
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func anyBound() any {
	return mock.AnythingOfType("*orb.Bound")
}

func TestListingSearchService_SearchListings_WithoutGeo(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()
	city := "Douala"
	expected := []*entity.Listing{{ID: idA, City: city}}

	listingRepo.EXPECT().
		SearchListings(ctx, repository.ListingFilter{City: &city}, repository.Page{Number: 2, Size: 10}).
		Return(expected, int64(25), nil)

	result, err := service.SearchListings(ctx, &usecase.ListingSearchInput{City: &city, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Listings)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestListingSearchService_SearchListings_GeoNarrowsIDs(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()
	propertyType := entity.PropertyTypeApartment
	expected := []*entity.Listing{{ID: idB}}

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(doualaCandidates(), nil)

	listingRepo.EXPECT().
		SearchListings(ctx, mock.MatchedBy(func(filter repository.ListingFilter) bool {
			return assert.ObjectsAreEqual([]uuid.UUID{idB, idA}, filter.IDs) &&
				filter.PropertyType != nil && *filter.PropertyType == propertyType
		}), repository.Page{Number: 1, Size: 10}).
		Return(expected, int64(1), nil)

	result, err := service.SearchListings(ctx, &usecase.ListingSearchInput{
		PropertyType: &propertyType,
		Latitude:     ptr(centerLat),
		Longitude:    ptr(centerLng),
		RadiusKm:     ptr(10.0),
	})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Listings)
	assert.Equal(t, 1, result.TotalPages)
}

func TestListingSearchService_SearchListings_NoGeoMatchesSkipsQuery(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return([]geo.Candidate[uuid.UUID]{candidate(idC, 10.0, 10.0)}, nil)

	result, err := service.SearchListings(ctx, &usecase.ListingSearchInput{
		Latitude:  ptr(centerLat),
		Longitude: ptr(centerLng),
		RadiusKm:  ptr(10.0),
		Page:      3,
		Limit:     5,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Listings)
	assert.Empty(t, result.Listings)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 5, result.Limit)
	listingRepo.AssertNotCalled(t, "SearchListings", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingSearchService_SearchListings_PartialGeoIgnored(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		SearchListings(ctx, repository.ListingFilter{}, repository.Page{Number: 1, Size: 10}).
		Return([]*entity.Listing{}, int64(0), nil)

	_, err := service.SearchListings(ctx, &usecase.ListingSearchInput{
		Latitude:  ptr(centerLat),
		Longitude: ptr(centerLng),
	})
	require.NoError(t, err)
	listingRepo.AssertNotCalled(t, "FindSearchCandidates", mock.Anything, mock.Anything)
}

func TestListingSearchService_SearchListings_ClampsPageSize(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		SearchListings(ctx, repository.ListingFilter{}, repository.Page{Number: 1, Size: 100}).
		Return([]*entity.Listing{}, int64(0), nil)

	result, err := service.SearchListings(ctx, &usecase.ListingSearchInput{Page: -4, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Limit)
	assert.Equal(t, 1, result.Page)
}

func TestListingSearchService_SearchListings_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ListingSearchInput
		code  string
	}{
		{
			name:  "NaN latitude",
			input: &usecase.ListingSearchInput{Latitude: ptr(math.NaN()), Longitude: ptr(centerLng), RadiusKm: ptr(10.0)},
			code:  "INVALID_SEARCH_AREA",
		},
		{
			name:  "infinite radius",
			input: &usecase.ListingSearchInput{Latitude: ptr(centerLat), Longitude: ptr(centerLng), RadiusKm: ptr(math.Inf(1))},
			code:  "INVALID_SEARCH_AREA",
		},
		{
			name:  "negative radius",
			input: &usecase.ListingSearchInput{Latitude: ptr(centerLat), Longitude: ptr(centerLng), RadiusKm: ptr(-1.0)},
			code:  "INVALID_SEARCH_AREA",
		},
		{
			name:  "radius above maximum",
			input: &usecase.ListingSearchInput{Latitude: ptr(centerLat), Longitude: ptr(centerLng), RadiusKm: ptr(150.0)},
			code:  "INVALID_SEARCH_AREA",
		},
		{
			name:  "longitude out of range",
			input: &usecase.ListingSearchInput{Latitude: ptr(centerLat), Longitude: ptr(181.0), RadiusKm: ptr(10.0)},
			code:  "INVALID_SEARCH_AREA",
		},
		{
			name:  "min price above max price",
			input: &usecase.ListingSearchInput{MinPrice: ptr(500.0), MaxPrice: ptr(100.0)},
			code:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestSearchService(t, testSearchConfig())

			result, err := service.SearchListings(context.Background(), tt.input)
			assert.Nil(t, result)
			requireAppError(t, err, tt.code)
		})
	}
}

func TestListingSearchService_SearchListings_CandidateFetchFails(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(nil, errors.New("connection reset"))

	result, err := service.SearchListings(ctx, &usecase.ListingSearchInput{
		Latitude:  ptr(centerLat),
		Longitude: ptr(centerLng),
		RadiusKm:  ptr(10.0),
	})
	assert.Nil(t, result)
	requireAppError(t, err, "SEARCH_UNAVAILABLE")
}

func TestListingSearchService_SearchListings_QueryFails(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		SearchListings(ctx, mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("connection reset"))

	_, err := service.SearchListings(ctx, &usecase.ListingSearchInput{})
	requireAppError(t, err, "SEARCH_UNAVAILABLE")
}

func TestListingSearchService_BoundingBoxPrefilter(t *testing.T) {
	t.Run("enabled passes a box around the center", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		ctx := context.Background()

		listingRepo.EXPECT().
			FindSearchCandidates(ctx, mock.MatchedBy(func(bound *orb.Bound) bool {
				return bound != nil && bound.Contains(orb.Point{centerLng, centerLat})
			})).
			Return(doualaCandidates(), nil)

		listingRepo.EXPECT().
			FindSearchableListingsByIDs(ctx, []uuid.UUID{idB, idA}).
			Return([]*entity.Listing{{ID: idA}, {ID: idB}}, nil)

		_, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
			Latitude:  centerLat,
			Longitude: centerLng,
			RadiusKm:  ptr(10.0),
		})
		require.NoError(t, err)
	})

	t.Run("disabled scans every candidate", func(t *testing.T) {
		cfg := testSearchConfig()
		cfg.Search.BoundingBoxPrefilter = false
		service, listingRepo := newTestSearchService(t, cfg)

		ctx := context.Background()

		listingRepo.EXPECT().
			FindSearchCandidates(ctx, mock.MatchedBy(func(bound *orb.Bound) bool {
				return bound == nil
			})).
			Return(doualaCandidates(), nil)

		listingRepo.EXPECT().
			FindSearchableListingsByIDs(ctx, []uuid.UUID{idB, idA}).
			Return([]*entity.Listing{{ID: idA}, {ID: idB}}, nil)

		_, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
			Latitude:  centerLat,
			Longitude: centerLng,
			RadiusKm:  ptr(10.0),
		})
		require.NoError(t, err)
	})

	t.Run("pole falls back to a full scan", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		ctx := context.Background()

		listingRepo.EXPECT().
			FindSearchCandidates(ctx, mock.MatchedBy(func(bound *orb.Bound) bool {
				return bound == nil
			})).
			Return([]geo.Candidate[uuid.UUID]{}, nil)

		result, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
			Latitude:  90,
			Longitude: 0,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Listings)
	})
}

func TestListingSearchService_FindNearbyListings(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()
	candidates := append(doualaCandidates(), candidate(idD, 4.0512, 9.7680))

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(candidates, nil)

	// B was rented between the scan and the fetch; rows come back unordered.
	listingRepo.EXPECT().
		FindSearchableListingsByIDs(ctx, []uuid.UUID{idD, idB, idA}).
		Return([]*entity.Listing{{ID: idA, Title: "A"}, {ID: idD, Title: "D"}}, nil)

	result, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
		Latitude:  centerLat,
		Longitude: centerLng,
		RadiusKm:  ptr(10.0),
	})
	require.NoError(t, err)

	require.Len(t, result.Listings, 2)
	assert.Equal(t, idD, result.Listings[0].ID)
	assert.Equal(t, idA, result.Listings[1].ID)
	assert.InDelta(t, geo.Distance(centerLat, centerLng, 4.0512, 9.7680), result.Listings[0].DistanceKm, 1e-12)
	assert.InDelta(t, geo.Distance(centerLat, centerLng, 4.0469, 9.7069), result.Listings[1].DistanceKm, 1e-12)
	assert.LessOrEqual(t, result.Listings[0].DistanceKm, result.Listings[1].DistanceKm)
	assert.Equal(t, geo.Point{Latitude: centerLat, Longitude: centerLng}, result.Center)
	assert.InDelta(t, 10.0, result.RadiusKm, 0)
}

func TestListingSearchService_FindNearbyListings_Defaults(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	// Only B lies inside the default 5 km radius.
	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(doualaCandidates(), nil)

	listingRepo.EXPECT().
		FindSearchableListingsByIDs(ctx, []uuid.UUID{idB}).
		Return([]*entity.Listing{{ID: idB}}, nil)

	result, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
		Latitude:  centerLat,
		Longitude: centerLng,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, result.RadiusKm, 0)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, idB, result.Listings[0].ID)
}

func TestListingSearchService_FindNearbyListings_Limit(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(doualaCandidates(), nil)

	listingRepo.EXPECT().
		FindSearchableListingsByIDs(ctx, []uuid.UUID{idB}).
		Return([]*entity.Listing{{ID: idB}}, nil)

	result, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
		Latitude:  centerLat,
		Longitude: centerLng,
		RadiusKm:  ptr(10.0),
		Limit:     ptr(1),
	})
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, idB, result.Listings[0].ID)
}

func TestListingSearchService_FindNearbyListings_NoMatches(t *testing.T) {
	service, listingRepo := newTestSearchService(t, testSearchConfig())

	ctx := context.Background()

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return([]geo.Candidate[uuid.UUID]{}, nil)

	result, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{
		Latitude:  centerLat,
		Longitude: centerLng,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Listings)
	assert.Empty(t, result.Listings)
	listingRepo.AssertNotCalled(t, "FindSearchableListingsByIDs", mock.Anything, mock.Anything)
}

func TestListingSearchService_FindNearbyListings_Errors(t *testing.T) {
	t.Run("candidate fetch fails", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		ctx := context.Background()

		listingRepo.EXPECT().
			FindSearchCandidates(ctx, anyBound()).
			Return(nil, errors.New("timeout"))

		_, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{Latitude: centerLat, Longitude: centerLng})
		requireAppError(t, err, "SEARCH_UNAVAILABLE")
	})

	t.Run("hydration fails", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		ctx := context.Background()

		listingRepo.EXPECT().
			FindSearchCandidates(ctx, anyBound()).
			Return(doualaCandidates(), nil)

		listingRepo.EXPECT().
			FindSearchableListingsByIDs(ctx, mock.Anything).
			Return(nil, errors.New("timeout"))

		_, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{Latitude: centerLat, Longitude: centerLng})
		requireAppError(t, err, "SEARCH_UNAVAILABLE")
	})

	t.Run("NaN longitude", func(t *testing.T) {
		service, _ := newTestSearchService(t, testSearchConfig())

		_, err := service.FindNearbyListings(context.Background(), &usecase.NearbySearchInput{
			Latitude:  centerLat,
			Longitude: math.NaN(),
		})
		requireAppError(t, err, "INVALID_SEARCH_AREA")
	})

	t.Run("nil input", func(t *testing.T) {
		service, _ := newTestSearchService(t, testSearchConfig())

		_, err := service.FindNearbyListings(context.Background(), nil)
		requireAppError(t, err, "INVALID_SEARCH_AREA")
	})
}

func TestListingSearchService_GetListing(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())
		expected := &entity.Listing{ID: idA}

		listingRepo.EXPECT().FindListingByID(ctx, idA).Return(expected, nil)

		listing, err := service.GetListing(ctx, idA)
		require.NoError(t, err)
		assert.Equal(t, expected, listing)
	})

	t.Run("not found", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		listingRepo.EXPECT().FindListingByID(ctx, idA).Return(nil, repository.ErrListingNotFound)

		_, err := service.GetListing(ctx, idA)
		assert.Equal(t, domainerrors.ErrListingNotFound, err)
	})

	t.Run("database error", func(t *testing.T) {
		service, listingRepo := newTestSearchService(t, testSearchConfig())

		listingRepo.EXPECT().FindListingByID(ctx, idA).Return(nil, errors.New("boom"))

		_, err := service.GetListing(ctx, idA)
		requireAppError(t, err, "DATABASE_EXECUTE_FAILED")
	})
}

func TestListingSearchService_NilConfigUsesDefaults(t *testing.T) {
	service, listingRepo := newTestSearchService(t, nil)

	ctx := context.Background()

	listingRepo.EXPECT().
		SearchListings(ctx, repository.ListingFilter{}, repository.Page{Number: 1, Size: 10}).
		Return([]*entity.Listing{}, int64(0), nil)

	_, err := service.SearchListings(ctx, nil)
	require.NoError(t, err)
}

func TestListingSearchService_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	listingRepo := mockRepo.NewMockListingRepository(t)
	service := NewListingSearchService(listingRepo, metrics.NewSearchMetrics(reg), testSearchConfig(), slog.New(slog.DiscardHandler))

	ctx := context.Background()

	listingRepo.EXPECT().
		FindSearchCandidates(ctx, anyBound()).
		Return(doualaCandidates(), nil)
	listingRepo.EXPECT().
		FindSearchableListingsByIDs(ctx, mock.Anything).
		Return([]*entity.Listing{{ID: idB}}, nil)

	_, err := service.FindNearbyListings(ctx, &usecase.NearbySearchInput{Latitude: centerLat, Longitude: centerLng})
	require.NoError(t, err)

	_, err = service.FindNearbyListings(ctx, &usecase.NearbySearchInput{Latitude: math.NaN(), Longitude: centerLng})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "rentradar_search_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "rentradar_search_candidates_scanned")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
