package application

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
	repo "github.com/chrsc3/BlogListBack/internal/domain/repository"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
)

const (
	UserValidationMessage = "User validation failed"

	MinUsernameLength = 3
	MinPasswordLength = 3
	// MaxPasswordBytes is the bcrypt input limit; longer passwords are rejected.
	MaxPasswordBytes = 72

	// UniqueUsernameMessage is part of the public error contract of registration.
	UniqueUsernameMessage = "expected `username` to be unique"
)

type UserService struct {
	Repo       repo.UserRepository
	Events     EventPublisher
	Logger     *logrus.Logger
	BcryptCost int
}

func NewUserService(repo repo.UserRepository, events EventPublisher, logger *logrus.Logger, bcryptCost int) *UserService {
	return &UserService{Repo: repo, Events: events, Logger: logger, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// Register hashes the password and inserts the account. A taken username is
// reported by the store and surfaces as a ValidationError.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	details := map[string]string{}
	switch {
	case in.Username == "":
		details["username"] = "is required"
	case utf8.RuneCountInString(in.Username) < MinUsernameLength:
		details["username"] = "must be at least 3 characters long"
	}
	switch {
	case in.Password == "":
		details["password"] = "is required"
	case utf8.RuneCountInString(in.Password) < MinPasswordLength:
		details["password"] = "must be at least 3 characters long"
	case len(in.Password) > MaxPasswordBytes:
		details["password"] = "must be at most 72 bytes long"
	}
	if len(details) > 0 {
		return nil, NewValidationError(UserValidationMessage, details)
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: in.Username, Name: in.Name, PasswordHash: hash}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, NewValidationError(UserValidationMessage, map[string]string{"username": UniqueUsernameMessage})
		}
		return nil, err
	}

	publish(ctx, s.Events, s.Logger, EventUserRegistered, u.ID, map[string]string{"username": u.Username})
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}
