package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/gravatar"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// UserService owns registration, login and identity lookup.
type UserService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates a user with a derived gravatar and a bcrypt password hash,
// then issues a session token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", ErrDuplicateUser
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}

	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Avatar:   gravatar.URL(email),
		Date:     time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// The unique email index closes the check-then-insert race.
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrDuplicateUser
		}
		return "", err
	}

	token, _, err := s.JWT.GenerateToken(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		return "", err
	}
	return token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse into the same error to prevent user enumeration.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.GenerateToken(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		return "", err
	}
	return token, nil
}

// GetByID returns the user record; malformed ids read as not found.
func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	u, err := s.Users.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}
