// Package importer reads listing seed files.
package importer

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"rentradar/internal/domain/entity"
	"rentradar/internal/domain/geo"
	"rentradar/internal/errors"
	"rentradar/internal/infra/storage"
	"rentradar/internal/util"

	"github.com/google/uuid"
)

const (
	defaultBatchSize = 500
	defaultCurrency  = "XAF"
)

// Expected CSV header, in any column order.
var columns = []string{
	"id",
	"title",
	"property_type",
	"price",
	"currency",
	"bedrooms",
	"bathrooms",
	"city",
	"address",
	"latitude",
	"longitude",
	"status",
	"is_available",
}

// CSVLoader streams listings from a CSV object in blob storage.
type CSVLoader struct {
	logger *slog.Logger
}

// NewCSVLoader creates a new CSV listing loader.
func NewCSVLoader(logger *slog.Logger) *CSVLoader {
	return &CSVLoader{logger: logger}
}

// Stream reads the CSV at source and hands listings to fn in batches of batchSize.
// It returns the number of rows read.
func (l *CSVLoader) Stream(ctx context.Context, source string, batchSize int, fn func(batch []*entity.Listing) error) (int, error) {
	start := time.Now()

	obj, err := storage.Open(ctx, source)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer obj.Close()

	l.logger.Info("Reading listing CSV",
		slog.String("source", source),
		slog.String("size", util.FormatBytes(obj.Size())),
	)

	rows, err := DecodeListings(ctx, obj, batchSize, fn)
	if err != nil {
		return rows, err
	}

	l.logger.Info("Listing CSV read",
		slog.Int("rows", rows),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return rows, nil
}

// DecodeListings parses listings from r and hands them to fn in batches.
// Expected CSV format:
// id,title,property_type,price,currency,bedrooms,bathrooms,city,address,latitude,longitude,status,is_available
func DecodeListings(ctx context.Context, r io.Reader, batchSize int, fn func(batch []*entity.Listing) error) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, errors.New("listing CSV is empty")
	}
	if err != nil {
		return 0, errors.WithStack(err)
	}

	index, err := indexHeader(header)
	if err != nil {
		return 0, err
	}

	batch := make([]*entity.Listing, 0, batchSize)
	rows := 0
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return rows, errors.WithStack(readErr)
		}
		lineNum++

		listing, parseErr := parseListing(record, index)
		if parseErr != nil {
			return rows, errors.Wrapf(parseErr, "invalid listing CSV at line %d", lineNum)
		}

		batch = append(batch, listing)
		rows++

		if len(batch) == batchSize {
			if err := ctx.Err(); err != nil {
				return rows, errors.WithStack(err)
			}
			if err := fn(batch); err != nil {
				return rows, err
			}
			batch = make([]*entity.Listing, 0, batchSize)
		}
	}

	if len(batch) > 0 {
		if err := fn(batch); err != nil {
			return rows, err
		}
	}

	return rows, nil
}

func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, column := range columns {
		if _, ok := index[column]; !ok {
			return nil, errors.Errorf("listing CSV header is missing column %q", column)
		}
	}

	return index, nil
}

func parseListing(record []string, index map[string]int) (*entity.Listing, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[index[name]])
	}

	listing := &entity.Listing{
		Title:    field("title"),
		City:     field("city"),
		Address:  field("address"),
		Currency: strings.ToUpper(field("currency")),
	}

	if listing.Title == "" {
		return nil, errors.New("title is required")
	}
	if listing.City == "" {
		return nil, errors.New("city is required")
	}
	if listing.Currency == "" {
		listing.Currency = defaultCurrency
	}

	listing.ID = uuid.New()
	if raw := field("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "id")
		}
		listing.ID = id
	}

	listing.PropertyType = entity.PropertyType(strings.ToLower(field("property_type")))
	if !listing.PropertyType.IsValid() {
		return nil, errors.Errorf("unknown property_type %q", field("property_type"))
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}
	listing.Price = price

	if listing.Bedrooms, err = parseCount(field("bedrooms")); err != nil {
		return nil, errors.Wrap(err, "bedrooms")
	}
	if listing.Bathrooms, err = parseCount(field("bathrooms")); err != nil {
		return nil, errors.Wrap(err, "bathrooms")
	}

	if listing.Latitude, listing.Longitude, err = parseCoordinates(field("latitude"), field("longitude")); err != nil {
		return nil, err
	}

	listing.Status = entity.ListingStatusActive
	if raw := field("status"); raw != "" {
		listing.Status = entity.ListingStatus(strings.ToLower(raw))
		if !listing.Status.IsValid() {
			return nil, errors.Errorf("unknown status %q", raw)
		}
	}

	listing.IsAvailable = true
	if raw := field("is_available"); raw != "" {
		if listing.IsAvailable, err = strconv.ParseBool(raw); err != nil {
			return nil, errors.Wrap(err, "is_available")
		}
	}

	return listing, nil
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}

	return n, nil
}

// parseCoordinates returns nil coordinates for a listing that is not geotagged.
func parseCoordinates(rawLat, rawLng string) (*float64, *float64, error) {
	if rawLat == "" && rawLng == "" {
		return nil, nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, nil, errors.New("latitude and longitude must be given together")
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, nil, errors.Wrap(err, "latitude")
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, nil, errors.Wrap(err, "longitude")
	}

	if err := geo.ValidatePoint(lat, lng); err != nil {
		return nil, nil, err
	}

	return &lat, &lng, nil
}
