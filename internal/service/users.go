package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/lightbnb/internal/repository"
)

// UserStore is the subset of the users repository the service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	GetByID(ctx context.Context, id int64) (*repository.User, error)
	Create(ctx context.Context, params repository.CreateUserParams) (*repository.User, error)
}

// RegisterUserInput carries the sign-up fields. Password is the plaintext
// credential; it is hashed before it ever reaches the store.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UsersService handles account registration and lookup.
type UsersService struct {
	store UserStore
	log   *zerolog.Logger
}

func NewUsersService(store UserStore, log *zerolog.Logger) *UsersService {
	return &UsersService{store: store, log: log}
}

// Register creates a new account. The plaintext password is bcrypt-hashed
// here so no other layer ever sees or stores it. A duplicate email surfaces
// as the unique-violation error from the store, classified downstream by
// the global error handler.
func (s *UsersService) Register(ctx context.Context, input RegisterUserInput) (*repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.store.Create(ctx, repository.CreateUserParams{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info().Int64("user_id", user.ID).Msg("user registered")
	}

	return user, nil
}

// GetByEmail looks up an account by email, case-insensitively. Returns
// (nil, nil) when no account exists.
func (s *UsersService) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return s.store.GetByEmail(ctx, email)
}

// GetByID looks up an account by primary key. Returns (nil, nil) when no
// account exists.
func (s *UsersService) GetByID(ctx context.Context, id int64) (*repository.User, error) {
	return s.store.GetByID(ctx, id)
}
