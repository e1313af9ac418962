package service

import (
	"context"
	"fmt"
	"strings"

	"tourism-webapp/errors"
	"tourism-webapp/logger"
	"tourism-webapp/model"
)

type CatalogService struct {
	destinations DestinationStore
	cache        DestinationCache
}

func NewCatalogService(destinations DestinationStore, cache DestinationCache) *CatalogService {
	if cache == nil {
		cache = NoCache
	}
	return &CatalogService{destinations: destinations, cache: cache}
}

func (s *CatalogService) CreateDestination(ctx context.Context, destination *model.Destination) error {
	destination.Name = strings.TrimSpace(destination.Name)
	if destination.Name == "" {
		return fmt.Errorf("%w: name is required", errors.ErrValidation)
	}
	if destination.Rating < 0 || destination.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", errors.ErrValidation)
	}

	if err := s.destinations.Create(ctx, destination); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "destination cache invalidation failed", "error", err)
	}
	return nil
}

// ListDestinations serves from the cache when possible. Cache failures
// degrade to a store read. A list loaded across an invalidation is not
// written back.
func (s *CatalogService) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		logger.WarnContext(ctx, "destination cache read failed", "error", err)
	}
	if ok {
		return cached, nil
	}

	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		logger.WarnContext(ctx, "destination cache generation read failed", "error", genErr)
	}

	destinations, err := s.destinations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if genErr == nil {
		if err := s.cache.Set(ctx, generation, destinations); err != nil {
			logger.WarnContext(ctx, "destination cache write failed", "error", err)
		}
	}
	return destinations, nil
}
