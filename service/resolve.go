package service

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolveDestinations batch-fetches the destinations referenced by ids and
// indexes them by id. Ids with no matching record are absent from the map.
func resolveDestinations(ctx context.Context, store DestinationStore, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Destination, error) {
	unique := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id.IsZero() {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	byID := make(map[primitive.ObjectID]model.Destination, len(unique))
	if len(unique) == 0 {
		return byID, nil
	}

	destinations, err := store.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, destination := range destinations {
		byID[destination.Id] = destination
	}
	return byID, nil
}

func lookup(byID map[primitive.ObjectID]model.Destination, id primitive.ObjectID) *model.Destination {
	destination, ok := byID[id]
	if !ok {
		return nil
	}
	return &destination
}
