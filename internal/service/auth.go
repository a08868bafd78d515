// Package service contains the business logic between the HTTP boundary and
// the repositories.
package service

import (
	"context"
	"fmt"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/auth"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  core.UserRepository
	Codec  ports.TokenCodec
	Hasher ports.PasswordHasher
}

// AuthService handles registration and login, the only two places plaintext
// passwords exist.
type AuthService struct {
	users  core.UserRepository
	codec  ports.TokenCodec
	hasher ports.PasswordHasher
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{users: opts.Users, codec: opts.Codec, hasher: opts.Hasher}
}

// AuthResult is a user together with their freshly signed token.
type AuthResult struct {
	User  *model.User
	Token string
}

// Register creates a user and signs a token for them. The admin flag is
// never taken from the request; new users are always non-admin.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterUserRequest) (*AuthResult, error) {
	if req == nil {
		return nil, apperrors.Validation("registration request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, core.CreateUserParams{
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhotoURL:     req.PhotoURL,
		IsAdmin:      false,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.Conflictf("There already exists a user with username '%s'", req.Username)
		}
		return nil, err
	}

	token, err := s.signFor(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and signs a token. An unknown username is
// NotFound; a wrong password is a validation failure, never Unauthorized,
// which is reserved for the route gates.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*AuthResult, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no user '%s'", req.Username)
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, apperrors.Validation("Invalid credentials")
	}

	token, err := s.signFor(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) signFor(user *model.User) (string, error) {
	token, err := s.codec.Sign(auth.Principal{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
