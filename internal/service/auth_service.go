package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/utils"
	"github.com/kcoproperties/leasing-api/pkg/auth"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, config *config.Config) AuthService {
	return &authService{userRepo: userRepo, config: config}
}

func (s *authService) Register(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	email = utils.NormalizeEmail(email)
	name = utils.NormalizeString(name)

	if !utils.IsValidEmail(email) {
		return nil, validationErrorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, validationErrorf("password must be at least 8 characters")
	}
	if role != "admin" && role != "tenant" {
		return nil, validationErrorf("invalid role %q", role)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validationErrorf("email already registered")
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, email, hash, name, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials and mints an access token. Lookup misses and
// hash mismatches report the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewAccessToken(user.ID, user.Email, user.Role, s.config.Auth.JWTSecret, s.config.Auth.AccessTokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
