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

type BookingRequest struct {
	UserID        primitive.ObjectID
	DestinationID primitive.ObjectID
	StartDate     time.Time
	EndDate       time.Time
	Travelers     int
}

type BookingService struct {
	bookings     BookingStore
	destinations DestinationStore
	users        UserStore
	activities   *ActivityService
	now          func() time.Time
}

func NewBookingService(bookings BookingStore, destinations DestinationStore, users UserStore, activities *ActivityService) *BookingService {
	return &BookingService{
		bookings:     bookings,
		destinations: destinations,
		users:        users,
		activities:   activities,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy that stamps records using now.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	copied := *s
	copied.now = now
	return &copied
}

// CreateBooking stores a Pending booking after checking that both referenced
// records exist, and returns it with the destination resolved.
func (s *BookingService) CreateBooking(ctx context.Context, req BookingRequest) (*model.BookingDetails, error) {
	if err := validateBookingRequest(&req); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("user %v: %w", req.UserID.Hex(), err)
	}
	destination, err := s.destinations.FindByID(ctx, req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("destination %v: %w", req.DestinationID.Hex(), err)
	}

	currentTime := s.now()
	booking := model.Booking{
		UserId:        req.UserID,
		DestinationId: req.DestinationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Travelers:     req.Travelers,
		Status:        model.StatusPending,
		CreatedAt:     currentTime,
		UpdatedAt:     currentTime,
	}
	if err := s.bookings.Create(ctx, &booking); err != nil {
		return nil, err
	}

	s.activities.record(ctx, req.UserID, model.ActivityBooking,
		fmt.Sprintf("Booked %s for %d traveler(s)", destination.Name, booking.Travelers),
		req.DestinationID)

	return &model.BookingDetails{Booking: booking, Destination: destination}, nil
}

// ListBookingsForUser returns the user's bookings newest first, each with its
// destination resolved through one batched lookup.
func (s *BookingService) ListBookingsForUser(ctx context.Context, userID primitive.ObjectID) ([]model.BookingDetails, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.DestinationId)
	}
	byID, err := resolveDestinations(ctx, s.destinations, ids)
	if err != nil {
		return nil, err
	}

	details := make([]model.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, model.BookingDetails{
			Booking:     booking,
			Destination: lookup(byID, booking.DestinationId),
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})
	return details, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id primitive.ObjectID) (*model.BookingDetails, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking %v: %w", id.Hex(), err)
	}
	if booking.Status == model.StatusCancelled {
		return nil, fmt.Errorf("%w: booking is already canceled", errors.ErrValidation)
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, model.StatusCancelled)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinations.FindByID(ctx, updated.DestinationId)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	content := "Cancelled booking"
	if destination != nil {
		content = fmt.Sprintf("Cancelled booking for %s", destination.Name)
	}
	s.activities.record(ctx, updated.UserId, model.ActivityCancellation, content, updated.DestinationId)

	return &model.BookingDetails{Booking: *updated, Destination: destination}, nil
}

func validateBookingRequest(req *BookingRequest) error {
	if req.UserID.IsZero() {
		return fmt.Errorf("%w: userId is required", errors.ErrValidation)
	}
	if req.DestinationID.IsZero() {
		return fmt.Errorf("%w: destination is required", errors.ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", errors.ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", errors.ErrValidation)
	}
	if req.Travelers < 0 {
		return fmt.Errorf("%w: travelers cannot be negative", errors.ErrValidation)
	}
	if req.Travelers == 0 {
		req.Travelers = model.DefaultTravelers
	}
	return nil
}
