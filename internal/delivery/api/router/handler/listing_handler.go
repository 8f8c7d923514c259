package handler

import (
	"log/slog"
	"net/http"

	"rentradar/internal/delivery/api/response"
	"rentradar/internal/delivery/api/validator"
	"rentradar/internal/domain/entity"
	"rentradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingSearchUC usecase.ListingSearchUsecase
	Logger          *slog.Logger
}

// ListingHandler holds dependencies for listing search handlers
type ListingHandler struct {
	listingSearchUC usecase.ListingSearchUsecase
	logger          *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingSearchUC: params.ListingSearchUC,
		logger:          params.Logger,
	}
}

// SearchListingsQuery represents the query string of GET /api/v1/listings
type SearchListingsQuery struct {
	Type      *string  `query:"type" validate:"omitempty,oneof=apartment house studio room villa land commercial"`
	City      *string  `query:"city" validate:"omitempty,min=1,max=100"`
	MinPrice  *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	Bedrooms  *int     `query:"bedrooms" validate:"omitempty,gte=0"`
	Latitude  *float64 `query:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `query:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Radius    *float64 `query:"radius" validate:"omitempty,gte=0"`
	Page      int      `query:"page" validate:"gte=1"`
	Limit     int      `query:"limit" validate:"gte=1,lte=100"`
}

// NearbyListingsQuery represents the query string of GET /api/v1/listings/nearby
type NearbyListingsQuery struct {
	Latitude  *float64 `query:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `query:"longitude" validate:"required,gte=-180,lte=180"`
	Radius    *float64 `query:"radius" validate:"omitempty,gte=0"`
	Limit     *int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// SearchListingsResponse is the data of a filtered search response
type SearchListingsResponse struct {
	Listings   []*entity.Listing    `json:"listings"`
	Pagination *response.Pagination `json:"pagination"`
}

// SearchListings handles filtered, paginated listing search
func (h *ListingHandler) SearchListings(c echo.Context) error {
	query := SearchListingsQuery{Page: 1, Limit: 10}
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid search parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid search parameters", validator.FieldErrors(err))
	}

	input := &usecase.ListingSearchInput{
		City:        query.City,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		MinBedrooms: query.Bedrooms,
		Latitude:    query.Latitude,
		Longitude:   query.Longitude,
		RadiusKm:    query.Radius,
		Page:        query.Page,
		Limit:       query.Limit,
	}
	if query.Type != nil {
		propertyType := entity.PropertyType(*query.Type)
		input.PropertyType = &propertyType
	}

	result, err := h.listingSearchUC.SearchListings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SearchListingsResponse{
		Listings: result.Listings,
		Pagination: &response.Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// FindNearbyListings handles the standalone nearby query
func (h *ListingHandler) FindNearbyListings(c echo.Context) error {
	var query NearbyListingsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid search parameters")
	}

	if query.Latitude == nil || query.Longitude == nil {
		return response.BadRequest(c, "MISSING_COORDINATES", "latitude and longitude are required")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid search parameters", validator.FieldErrors(err))
	}

	result, err := h.listingSearchUC.FindNearbyListings(c.Request().Context(), &usecase.NearbySearchInput{
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
		RadiusKm:  query.Radius,
		Limit:     query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetListing handles retrieving a single listing
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Invalid listing ID format")
	}

	listing, err := h.listingSearchUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}
