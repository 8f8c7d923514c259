package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentradar/config"
	"rentradar/internal/delivery/api/router/handler"
	"rentradar/internal/delivery/api/validator"
	"rentradar/internal/domain/entity"
	"rentradar/internal/infra/metrics"
	mockUsecase "rentradar/internal/mocks/usecase"
	"rentradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestEcho(t *testing.T, cfg *config.Config) (*echo.Echo, *mockUsecase.MockListingSearchUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockListingSearchUsecase(t)
	r := NewRouter(RouterParams{
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
			ListingSearchUC: uc,
			Logger:          slog.New(slog.DiscardHandler),
		}),
		HealthHandler: handler.NewHealthHandler(okPinger{}),
		SearchMetrics: metrics.NewSearchMetrics(prometheus.NewRegistry()),
		Config:        cfg,
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	return e, uc
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestRouter_NearbyIsNotAnID(t *testing.T) {
	e, uc := newTestEcho(t, &config.Config{})

	uc.EXPECT().
		FindNearbyListings(mock.Anything, mock.Anything).
		Return(&usecase.NearbySearchResult{Listings: []*entity.NearbyListing{}}, nil)

	rec := serve(e, "/api/v1/listings/nearby?latitude=4&longitude=9")
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "GetListing", mock.Anything, mock.Anything)
}

func TestRouter_Health(t *testing.T) {
	e, _ := newTestEcho(t, &config.Config{})

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
}

func TestRouter_Metrics(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		e, _ := newTestEcho(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}})

		assert.Equal(t, http.StatusOK, serve(e, "/metrics").Code)
	})

	t.Run("disabled", func(t *testing.T) {
		e, _ := newTestEcho(t, &config.Config{Metrics: &config.MetricsConfig{Enabled: false, Path: "/metrics"}})

		assert.Equal(t, http.StatusNotFound, serve(e, "/metrics").Code)
	})
}
