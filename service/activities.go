package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/logger"
	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityService struct {
	activities ActivityStore
}

func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) Log(ctx context.Context, activity *model.Activity) error {
	activity.Type = strings.TrimSpace(activity.Type)
	if activity.Type == "" {
		return fmt.Errorf("%w: type is required", errors.ErrValidation)
	}
	if activity.DestinationId != nil && activity.DestinationId.IsZero() {
		activity.DestinationId = nil
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	return s.activities.Create(ctx, activity)
}

func (s *ActivityService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Activity, error) {
	activities, err := s.activities.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	return activities, nil
}

// record logs a side-effect activity for another flow. Failures are logged
// and swallowed so the originating write still succeeds.
func (s *ActivityService) record(ctx context.Context, userID primitive.ObjectID, kind, content string, destinationID primitive.ObjectID) {
	if s == nil {
		return
	}
	activity := &model.Activity{
		UserId:        userID,
		Type:          kind,
		Content:       content,
		DestinationId: &destinationID,
	}
	if err := s.Log(ctx, activity); err != nil {
		logger.WarnContext(ctx, "activity not recorded", "kind", kind, "user_id", userID.Hex(), "error", err)
	}
}
