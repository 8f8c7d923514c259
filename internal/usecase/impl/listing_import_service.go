package impl

import (
	"context"
	"log/slog"
	"time"

	"rentradar/config"
	"rentradar/internal/domain/entity"
	domainerrors "rentradar/internal/domain/errors"
	"rentradar/internal/domain/repository"
	"rentradar/internal/errors"
	"rentradar/internal/usecase"
	"rentradar/internal/util"
)

const defaultImportBatchSize = 500

type listingImportService struct {
	txManager repository.TransactionManager
	feed      usecase.ListingFeed
	batchSize int
	logger    *slog.Logger
}

// NewListingImportService creates a new listing import service instance
func NewListingImportService(
	txManager repository.TransactionManager,
	feed usecase.ListingFeed,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ListingImportUsecase {
	batchSize := defaultImportBatchSize
	if cfg != nil && cfg.Importer != nil && cfg.Importer.BatchSize > 0 {
		batchSize = cfg.Importer.BatchSize
	}

	return &listingImportService{
		txManager: txManager,
		feed:      feed,
		batchSize: batchSize,
		logger:    logger,
	}
}

// ImportListings loads every listing from source inside a single transaction.
// Nothing is persisted when any row or batch fails.
func (s *listingImportService) ImportListings(ctx context.Context, source string) (*usecase.ImportSummary, error) {
	if source == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("import source is required")
	}

	start := time.Now()
	summary := &usecase.ImportSummary{Source: source}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		listingRepo := factory.NewListingRepository()

		rows, err := s.feed.Stream(ctx, source, s.batchSize, func(batch []*entity.Listing) error {
			if err := listingRepo.CreateListings(ctx, batch); err != nil {
				return err
			}

			for _, listing := range batch {
				if listing.Geotagged() {
					summary.Geotagged++
				}
				if listing.Searchable() {
					summary.Searchable++
				}
			}

			s.logger.DebugContext(ctx, "Imported listing batch", slog.Int("size", len(batch)))

			return nil
		})
		summary.Imported = rows

		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Listing import failed",
			slog.String("source", source),
			slog.Int("rowsRead", summary.Imported),
			slog.Any("error", err),
		)

		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, domainerrors.ErrImportFailed.WithDetails(err.Error())
	}

	s.logger.InfoContext(ctx, "Listing import completed",
		slog.String("source", source),
		slog.Int("imported", summary.Imported),
		slog.Int("geotagged", summary.Geotagged),
		slog.Int("searchable", summary.Searchable),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return summary, nil
}
