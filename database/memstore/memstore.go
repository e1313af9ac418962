// Package memstore keeps every collection in process memory. It honours the
// same uniqueness rules as the MongoDB indexes and is selected with
// STORE_DRIVER=memory.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"
	"tourism-webapp/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu           sync.RWMutex
	users        []model.User
	destinations []model.Destination
	bookings     []model.Booking
	favorites    []model.Favorite
	activities   []model.Activity
	images       []model.Image
	pages        []model.Page
}

func New() *Store {
	return &Store{}
}

func (s *Store) Stores() service.Stores {
	return service.Stores{
		Users:        (*users)(s),
		Destinations: (*destinations)(s),
		Bookings:     (*bookings)(s),
		Favorites:    (*favorites)(s),
		Activities:   (*activities)(s),
		Images:       (*images)(s),
		Pages:        (*pages)(s),
	}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func notFound(kind string, key string) error {
	return fmt.Errorf("%s %v: %w", kind, key, errors.ErrNotFound)
}

func duplicate(index string) error {
	return fmt.Errorf("%w: %s already exists", errors.ErrDuplicateKey, index)
}

type users Store

func (s *users) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(primitive.NilObjectID, user.Username, user.Email); err != nil {
		return err
	}
	user.Id = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

func (s *users) checkUnique(self primitive.ObjectID, username, email string) error {
	for _, u := range s.users {
		if u.Id == self {
			continue
		}
		if username != "" && u.Username == username {
			return duplicate("username")
		}
		if email != "" && strings.EqualFold(u.Email, email) {
			return duplicate("email")
		}
	}
	return nil
}

func (s *users) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Id == id {
			return &u, nil
		}
	}
	return nil, notFound("user", id.Hex())
}

func (s *users) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, notFound("user", username)
}

func (s *users) UpdateByID(_ context.Context, id primitive.ObjectID, update model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Id != id {
			continue
		}
		var username, email string
		if update.Username != nil {
			username = *update.Username
		}
		if update.Email != nil {
			email = *update.Email
		}
		if err := s.checkUnique(id, username, email); err != nil {
			return nil, err
		}
		update.Apply(&s.users[i])
		u := s.users[i]
		return &u, nil
	}
	return nil, notFound("user", id.Hex())
}

type destinations Store

func (s *destinations) Create(_ context.Context, destination *model.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	destination.Id = primitive.NewObjectID()
	s.destinations = append(s.destinations, *destination)
	return nil
}

func (s *destinations) FindByID(_ context.Context, id primitive.ObjectID) (*model.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.destinations {
		if d.Id == id {
			return &d, nil
		}
	}
	return nil, notFound("destination", id.Hex())
}

func (s *destinations) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	result := []model.Destination{}
	for _, d := range s.destinations {
		if _, ok := wanted[d.Id]; ok {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *destinations) FindAll(context.Context) ([]model.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Destination{}, s.destinations...), nil
}

// DeleteDestination removes a destination. No route deletes destinations; this
// lets tests produce dangling references.
func (s *Store) DeleteDestination(id primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.destinations[:0]
	for _, d := range s.destinations {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	s.destinations = kept
}

type bookings Store

func (s *bookings) Create(_ context.Context, booking *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.Id = primitive.NewObjectID()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *bookings) FindByID(_ context.Context, id primitive.ObjectID) (*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.Id == id {
			return &b, nil
		}
	}
	return nil, notFound("booking", id.Hex())
}

func (s *bookings) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []model.Booking{}
	for _, b := range s.bookings {
		if b.UserId == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *bookings) UpdateStatus(_ context.Context, id primitive.ObjectID, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", errors.ErrValidation, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].Id == id {
			s.bookings[i].Status = status
			s.bookings[i].UpdatedAt = time.Now().UTC()
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, notFound("booking", id.Hex())
}

type favorites Store

func (s *favorites) Create(_ context.Context, favorite *model.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.UserId == favorite.UserId && f.DestinationId == favorite.DestinationId {
			return duplicate("favorite")
		}
	}
	favorite.Id = primitive.NewObjectID()
	s.favorites = append(s.favorites, *favorite)
	return nil
}

func (s *favorites) Exists(_ context.Context, userID, destinationID primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.favorites {
		if f.UserId == userID && f.DestinationId == destinationID {
			return true, nil
		}
	}
	return false, nil
}

func (s *favorites) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []model.Favorite{}
	for _, f := range s.favorites {
		if f.UserId == userID {
			result = append(result, f)
		}
	}
	return result, nil
}

type activities Store

func (s *activities) Create(_ context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity.Id = primitive.NewObjectID()
	s.activities = append(s.activities, *activity)
	return nil
}

func (s *activities) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []model.Activity{}
	for _, a := range s.activities {
		if a.UserId == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

type images Store

func (s *images) Create(_ context.Context, image *model.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	image.Id = primitive.NewObjectID()
	s.images = append(s.images, *image)
	return nil
}

func (s *images) Find(_ context.Context, category string) ([]model.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []model.Image{}
	for _, img := range s.images {
		if category == "" || img.Category == category {
			result = append(result, img)
		}
	}
	return result, nil
}

type pages Store

func (s *pages) Create(_ context.Context, page *model.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pages {
		if p.Slug == page.Slug {
			return duplicate("slug")
		}
	}
	page.Id = primitive.NewObjectID()
	s.pages = append(s.pages, *page)
	return nil
}

func (s *pages) FindAll(context.Context) ([]model.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := append([]model.Page{}, s.pages...)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Slug < result[j].Slug })
	return result, nil
}

func (s *pages) FindBySlug(_ context.Context, slug string) (*model.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pages {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, notFound("page", slug)
}
