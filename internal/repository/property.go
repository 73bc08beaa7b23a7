package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const searchProperties = `
SELECT ` + propertyColumns + `,
	AVG(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id
`

const createProperty = `
INSERT INTO properties (
	owner_id, title, description, thumbnail_photo_url, cover_photo_url,
	cost_per_night, street, city, province, post_code, country,
	parking_spaces, number_of_bathrooms, number_of_bedrooms
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + propertyColumns

type PropertyRepository struct {
	db     DBTX
	logger *zerolog.Logger
}

func NewPropertyRepository(db DBTX, logger *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, logger: logger}
}

// buildSearch renders the search statement for filter. Prices are bound in cents.
func buildSearch(filter model.PropertyFilter, limit int) (string, []any, error) {
	q := query.New(searchProperties)

	if filter.City != nil {
		q.Where("properties.city ILIKE ?", query.Contains(*filter.City))
	}
	if filter.OwnerID != nil {
		q.Where("properties.owner_id = ?", *filter.OwnerID)
	}
	if filter.HasPriceRange() {
		q.Where("properties.cost_per_night >= ?", model.ToCents(*filter.MinimumPricePerNight))
		q.Where("properties.cost_per_night <= ?", model.ToCents(*filter.MaximumPricePerNight))
	}

	q.GroupBy("properties.id")

	if filter.MinimumRating != nil {
		q.Having("AVG(property_reviews.rating) >= ?", *filter.MinimumRating)
	}

	return q.OrderBy("properties.cost_per_night").Limit(limit).Build()
}

// Search returns up to limit properties matching filter, cheapest first, each with
// its average review rating. Properties without reviews are not returned.
func (r *PropertyRepository) Search(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.PropertySearchResult, error) {
	sql, args, err := buildSearch(filter, limit)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Msg("failed to build property search")
		return nil, sqlerr.HandleError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Interface("filter", filter).Msg("failed to search properties")
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	results := []model.PropertySearchResult{}
	for rows.Next() {
		var res model.PropertySearchResult
		dest := append(propertyDest(&res.Property), &res.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			r.logger.Error().Stack().Err(errors.WithStack(err)).Msg("failed to scan property")
			return nil, sqlerr.HandleError(err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Msg("failed to iterate properties")
		return nil, sqlerr.HandleError(err)
	}

	return results, nil
}

// Create inserts a property and returns the stored row.
func (r *PropertyRepository) Create(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	var created model.Property
	err := r.db.QueryRow(ctx, createProperty,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.Street, p.City, p.Province, p.PostCode, p.Country,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
	).Scan(propertyDest(&created)...)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Int64("owner_id", p.OwnerID).Msg("failed to create property")
		return nil, sqlerr.HandleError(err)
	}
	return &created, nil
}
