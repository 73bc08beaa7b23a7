package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/rs/zerolog"
)

type PropertyStore interface {
	Search(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.PropertySearchResult, error)
	Create(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	properties PropertyStore
	logger     *zerolog.Logger
}

func NewPropertyService(properties PropertyStore, logger *zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, logger: logger}
}

// Search returns properties matching filter, cheapest first.
// A limit of 0 means DefaultLimit.
func (s *PropertyService) Search(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.PropertySearchResult, error) {
	if err := validation.Validate(&filter); err != nil {
		return nil, err
	}
	limit, err := resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.properties.Search(ctx, filter, limit)
}

func (s *PropertyService) Create(ctx context.Context, in model.NewProperty) (*model.Property, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	property, err := s.properties.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("property_id", property.ID).Int64("owner_id", property.OwnerID).Msg("property created")
	return property, nil
}
