package postgres

import (
	"strings"
	"testing"

	"rentradar/internal/domain/entity"
	"rentradar/internal/domain/repository"
	"rentradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements with the PostgreSQL dialect without connecting.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=rentradar dbname=rentradar sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	return db
}

func candidatesSQL(db *gorm.DB, bound *orb.Bound) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.ListingCandidateModel

		return candidatesQuery(tx, bound).Find(&rows)
	})
}

func TestCandidatesQuery(t *testing.T) {
	db := newDryRunDB(t)

	t.Run("searchable geotagged listings in stable order", func(t *testing.T) {
		sql := candidatesSQL(db, nil)

		assert.Contains(t, sql, `"latitude","longitude" FROM "listings"`)
		assert.Contains(t, sql, "status = 'active' AND is_available = true")
		assert.Contains(t, sql, "latitude IS NOT NULL AND longitude IS NOT NULL")
		assert.True(t, strings.HasSuffix(sql, "ORDER BY created_at ASC,id ASC"), sql)
		assert.NotContains(t, sql, "BETWEEN")
	})

	t.Run("bound narrows by latitude and longitude", func(t *testing.T) {
		bound := orb.Bound{
			Min: orb.Point{9.6, 3.9},
			Max: orb.Point{9.9, 4.2},
		}

		sql := candidatesSQL(db, &bound)

		assert.Contains(t, sql, "latitude BETWEEN 3.9 AND 4.2")
		assert.Contains(t, sql, "longitude BETWEEN 9.6 AND 9.9")
		assert.Contains(t, sql, "latitude IS NOT NULL AND longitude IS NOT NULL")
		assert.True(t, strings.HasSuffix(sql, "ORDER BY created_at ASC,id ASC"), sql)
	})
}

func TestListingsQuery(t *testing.T) {
	db := newDryRunDB(t)

	t.Run("filters and page", func(t *testing.T) {
		apartment := entity.PropertyTypeApartment
		city := "Douala"
		minPrice, maxPrice, bedrooms := 50000.0, 150000.0, 2
		id := uuid.MustParse("7d3c0a52-3f5e-4c55-9d1c-4a0cbe1f5a10")

		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var rows []*model.ListingModel
			query := listingsQuery(tx, repository.ListingFilter{
				IDs:          []uuid.UUID{id},
				PropertyType: &apartment,
				City:         &city,
				MinPrice:     &minPrice,
				MaxPrice:     &maxPrice,
				MinBedrooms:  &bedrooms,
			})

			return listingsPage(query, repository.Page{Number: 3, Size: 10}).Find(&rows)
		})

		assert.Contains(t, sql, "status = 'active' AND is_available = true")
		assert.Contains(t, sql, "id = ANY('{"+id.String()+"}'::uuid[])")
		assert.Contains(t, sql, "property_type = 'apartment'")
		assert.Contains(t, sql, "LOWER(city) = LOWER('Douala')")
		assert.Contains(t, sql, "price >= 50000")
		assert.Contains(t, sql, "price <= 150000")
		assert.Contains(t, sql, "bedrooms >= 2")
		assert.Contains(t, sql, "ORDER BY created_at DESC,id ASC LIMIT 10 OFFSET 20")
	})

	t.Run("count shares the filter", func(t *testing.T) {
		city := "Yaounde"

		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var total int64

			return listingsQuery(tx, repository.ListingFilter{City: &city}).Count(&total)
		})

		assert.Contains(t, sql, `SELECT count(*) FROM "listings"`)
		assert.Contains(t, sql, "status = 'active' AND is_available = true")
		assert.Contains(t, sql, "LOWER(city) = LOWER('Yaounde')")
		assert.NotContains(t, sql, "ANY(")
	})

	t.Run("many IDs bind as one parameter", func(t *testing.T) {
		ids := make([]uuid.UUID, 70000)
		for idx := range ids {
			ids[idx] = uuid.New()
		}

		var rows []*model.ListingModel
		stmt := listingsQuery(db, repository.ListingFilter{IDs: ids}).Find(&rows).Statement

		// status, is_available and the ID array
		assert.Len(t, stmt.Vars, 3)
		assert.Contains(t, stmt.SQL.String(), "id = ANY($3::uuid[])")
	})
}

func TestUUIDArray(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t, "{}", uuidArray(nil))
	assert.Equal(t, "{11111111-1111-1111-1111-111111111111}", uuidArray([]uuid.UUID{a}))
	assert.Equal(t,
		"{11111111-1111-1111-1111-111111111111,22222222-2222-2222-2222-222222222222}",
		uuidArray([]uuid.UUID{a, b}),
	)
}
