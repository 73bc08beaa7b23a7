package model

import (
	"math"

	"github.com/deppfellow/lightbnb/internal/validation"
)

// Property is a row of the properties table. CostPerNight is in cents.
type Property struct {
	ID                int64  `json:"id" db:"id"`
	OwnerID           int64  `json:"owner_id" db:"owner_id"`
	Title             string `json:"title" db:"title"`
	Description       string `json:"description" db:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night" db:"cost_per_night"`
	Street            string `json:"street" db:"street"`
	City              string `json:"city" db:"city"`
	Province          string `json:"province" db:"province"`
	PostCode          string `json:"post_code" db:"post_code"`
	Country           string `json:"country" db:"country"`
	ParkingSpaces     int32  `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" db:"number_of_bedrooms"`
}

// Price returns the nightly cost in major currency units.
func (p Property) Price() float64 {
	return float64(p.CostPerNight) / 100
}

// PropertySearchResult is a property together with the average of its review ratings.
type PropertySearchResult struct {
	Property
	AverageRating float64 `json:"average_rating" db:"average_rating"`
}

// NewProperty is the listing input. CostPerNight is in cents.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description" validate:"required"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url,max=255"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	Street            string `json:"street" validate:"required,max=255"`
	City              string `json:"city" validate:"required,max=255"`
	Province          string `json:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" validate:"required,max=255"`
	Country           string `json:"country" validate:"required,max=255"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"gte=0"`
}

func (p *NewProperty) Validate() error {
	return validation.Struct(p)
}

// PropertyFilter narrows a property search. A nil field is not applied.
//
// Prices are in major currency units; the two bounds must be given together
// and fit the integer cost_per_night column once converted to cents.
type PropertyFilter struct {
	City                 *string  `json:"city,omitempty" validate:"omitempty,max=255"`
	OwnerID              *int64   `json:"owner_id,omitempty" validate:"omitempty,gt=0"`
	MinimumPricePerNight *float64 `json:"minimum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=21474836.47"`
	MaximumPricePerNight *float64 `json:"maximum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=21474836.47"`
	MinimumRating        *float64 `json:"minimum_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

func (f *PropertyFilter) Validate() error {
	if err := validation.Struct(f); err != nil {
		return err
	}

	var problems validation.CustomValidationErrors
	switch {
	case f.MinimumPricePerNight != nil && f.MaximumPricePerNight == nil:
		problems = append(problems, validation.CustomValidationError{
			Field:   "maximum_price_per_night",
			Message: "is required when minimum_price_per_night is set",
		})
	case f.MaximumPricePerNight != nil && f.MinimumPricePerNight == nil:
		problems = append(problems, validation.CustomValidationError{
			Field:   "minimum_price_per_night",
			Message: "is required when maximum_price_per_night is set",
		})
	case f.MinimumPricePerNight != nil && *f.MinimumPricePerNight > *f.MaximumPricePerNight:
		problems = append(problems, validation.CustomValidationError{
			Field:   "minimum_price_per_night",
			Message: "must not exceed maximum_price_per_night",
		})
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// HasPriceRange reports whether both price bounds are set.
func (f *PropertyFilter) HasPriceRange() bool {
	return f.MinimumPricePerNight != nil && f.MaximumPricePerNight != nil
}

// ToCents converts a major-unit amount to cents, rounding to the nearest cent.
// Amounts outside the int64 range saturate; NaN converts to 0.
func ToCents(amount float64) int64 {
	cents := math.Round(amount * 100)
	switch {
	case math.IsNaN(cents):
		return 0
	case cents >= math.MaxInt64:
		return math.MaxInt64
	case cents <= math.MinInt64:
		return math.MinInt64
	}
	return int64(cents)
}
