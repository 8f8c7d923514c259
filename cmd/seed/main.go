package main

import (
	"context"
	"flag"
	"log/slog"

	"rentradar/config"
	"rentradar/internal/errors"
	"rentradar/internal/infra/importer"
	logs "rentradar/internal/infra/log"
	"rentradar/internal/infra/persistence/postgres"
	"rentradar/internal/usecase"
	"rentradar/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type runImportParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	DB       *gorm.DB
	Importer usecase.ListingImportUsecase
}

func main() {
	source := flag.String("source", "", "Blob URL of the listing CSV, overrides importer.source")
	migrateOnly := flag.Bool("migrate-only", false, "Create the listings table and exit")
	flag.Parse()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			fx.Annotate(
				importer.NewCSVLoader,
				fx.As(new(usecase.ListingFeed)),
			),
			impl.NewListingImportService,
		),
		fx.Invoke(func(params runImportParams) {
			// Appended after postgres.New's hook, so the pool is already pinged.
			params.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := runImport(context.Background(), params, *source, *migrateOnly); err != nil {
							params.Logger.Error("Listing import failed", slog.Any("error", err))
							_ = params.Shutdown(fx.ExitCode(1))

							return
						}
						_ = params.Shutdown()
					}()

					return nil
				},
			})
		}),
	).Run()
}

func runImport(ctx context.Context, params runImportParams, source string, migrateOnly bool) error {
	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}
	if migrateOnly {
		params.Logger.Info("Listings table migrated")

		return nil
	}

	if source == "" && params.Config.Importer != nil {
		source = params.Config.Importer.Source
	}
	if source == "" {
		return errors.New("no import source: pass -source or set importer.source")
	}

	summary, err := params.Importer.ImportListings(ctx, source)
	if err != nil {
		return err
	}

	params.Logger.Info("Listings imported",
		slog.String("source", summary.Source),
		slog.Int("imported", summary.Imported),
		slog.Int("geotagged", summary.Geotagged),
		slog.Int("searchable", summary.Searchable),
	)

	return nil
}
