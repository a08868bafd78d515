package service

import (
	"context"
	"fmt"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users  core.UserRepository
	Hasher ports.PasswordHasher
}

// UserService handles user reads and profile updates.
type UserService struct {
	users  core.UserRepository
	hasher ports.PasswordHasher
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{users: opts.Users, hasher: opts.Hasher}
}

// List returns public summaries of all users.
func (s *UserService) List(ctx context.Context) ([]*model.UserSummary, error) {
	return s.users.List(ctx)
}

// Get retrieves a user by username.
func (s *UserService) Get(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no user '%s'", username)
		}
		return nil, err
	}
	return user, nil
}

// Update applies a sparse update to a user. A new password is re-hashed
// before it reaches the repository.
func (s *UserService) Update(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := core.UserUpdateFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, username, fields)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no user '%s'", username)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, username string) error {
	deleted, err := s.users.Delete(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFoundf("There exists no user '%s'", username)
	}
	return nil
}
