package service

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence the UserService needs. *repository.UserRepository implements it.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
}

type UserService struct {
	users      UserStore
	bcryptCost int
	logger     *zerolog.Logger
}

func NewUserService(users UserStore, bcryptCost int, logger *zerolog.Logger) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: bcryptCost, logger: logger}
}

// GetByEmail returns the user with email, or nil when there is none.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// GetByID returns the user with id, or nil when there is none.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if id <= 0 {
		return nil, invalidID("id")
	}
	return s.users.GetByID(ctx, id)
}

// Register validates in, hashes the password and stores the user.
func (s *UserService) Register(ctx context.Context, in model.NewUser) (*model.User, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, errs.NewInternalError()
	}

	user, err := s.users.Create(ctx, in.Name, in.Email, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

func invalidCredentials() error {
	return errs.NewUnauthorizedError("Invalid email or password", true)
}

// Authenticate returns the user whose email and password match.
// An unknown email and a wrong password fail the same way.
func (s *UserService) Authenticate(ctx context.Context, creds model.Credentials) (*model.User, error) {
	if err := validation.Validate(&creds); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, invalidCredentials()
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to compare password hash")
		return nil, errs.NewInternalError()
	}

	return user, nil
}
