package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteService struct {
	favorites    FavoriteStore
	destinations DestinationStore
	activities   *ActivityService
	now          func() time.Time
}

func NewFavoriteService(favorites FavoriteStore, destinations DestinationStore, activities *ActivityService) *FavoriteService {
	return &FavoriteService{
		favorites:    favorites,
		destinations: destinations,
		activities:   activities,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy that stamps favorites using now.
func (s *FavoriteService) WithClock(now func() time.Time) *FavoriteService {
	copied := *s
	copied.now = now
	return &copied
}

// AddFavorite rejects a second favorite for the same (user, destination) pair
// with ErrDuplicateKey.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, destinationID primitive.ObjectID) (*model.Favorite, error) {
	if userID.IsZero() || destinationID.IsZero() {
		return nil, fmt.Errorf("%w: userId and destinationId are required", errors.ErrValidation)
	}

	destination, err := s.destinations.FindByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("destination %v: %w", destinationID.Hex(), err)
	}

	exists, err := s.favorites.Exists(ctx, userID, destinationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: destination is already a favorite", errors.ErrDuplicateKey)
	}

	favorite := &model.Favorite{
		UserId:        userID,
		DestinationId: destinationID,
		AddedAt:       s.now(),
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	s.activities.record(ctx, userID, model.ActivityFavorite,
		fmt.Sprintf("Added %s to favorites", destination.Name), destinationID)
	return favorite, nil
}

// ListFavorites returns the user's favorites newest first.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]model.FavoriteDetails, error) {
	favorites, err := s.favorites.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.DestinationId)
	}
	byID, err := resolveDestinations(ctx, s.destinations, ids)
	if err != nil {
		return nil, err
	}

	details := make([]model.FavoriteDetails, 0, len(favorites))
	for _, favorite := range favorites {
		details = append(details, model.FavoriteDetails{
			Favorite:    favorite,
			Destination: lookup(byID, favorite.DestinationId),
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].AddedAt.After(details[j].AddedAt)
	})
	return details, nil
}
