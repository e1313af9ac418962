package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type Registration struct {
	Username string
	Email    string
	Phone    string
	Address  string
	Password string
}

// ProfileEdit is a partial edit; nil fields are kept as stored.
type ProfileEdit struct {
	Username *string
	Email    *string
	Phone    *string
	Address  *string
	Password *string
}

type UserService struct {
	users UserStore
	cost  int
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy that hashes passwords with cost. Tests use
// bcrypt.MinCost to keep runs fast.
func (s *UserService) WithHashCost(cost int) *UserService {
	return &UserService{users: s.users, cost: cost}
}

func (s *UserService) Register(ctx context.Context, in Registration) (*model.User, error) {
	fields := map[string]string{
		"username": in.Username,
		"email":    in.Email,
		"phone":    in.Phone,
		"address":  in.Address,
		"password": in.Password,
	}
	for _, name := range []string{"username", "email", "phone", "address", "password"} {
		if strings.TrimSpace(fields[name]) == "" {
			return nil, fmt.Errorf("%w: %s is required", errors.ErrValidation, name)
		}
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns ErrInvalidCredentials for both an unknown username and a
// wrong password.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.IsNotFound(err) {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !isPasswordHashCorrect(user.PasswordHash, password) {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, edit ProfileEdit) (*model.User, error) {
	update := model.UserUpdate{}

	var err error
	if update.Username, err = nonEmpty("username", edit.Username); err != nil {
		return nil, err
	}
	if update.Email, err = nonEmpty("email", edit.Email); err != nil {
		return nil, err
	}
	if update.Email != nil {
		lowered := strings.ToLower(*update.Email)
		update.Email = &lowered
	}
	if update.Phone, err = nonEmpty("phone", edit.Phone); err != nil {
		return nil, err
	}
	if update.Address, err = nonEmpty("address", edit.Address); err != nil {
		return nil, err
	}
	if edit.Password != nil {
		if *edit.Password == "" {
			return nil, fmt.Errorf("%w: password cannot be empty", errors.ErrValidation)
		}
		hash, err := s.hash(*edit.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		return s.users.FindByID(ctx, id)
	}
	return s.users.UpdateByID(ctx, id, update)
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password is too long", errors.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("cannot hash password: %v", err)
	}
	return string(hash), nil
}

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func nonEmpty(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %s cannot be empty", errors.ErrValidation, field)
	}
	return &trimmed, nil
}
