package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lessonhub/internal/auth"
	"lessonhub/internal/errors"
	"lessonhub/internal/model"
	"lessonhub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and token-based identity resolution.
type AuthService interface {
	Register(ctx context.Context, username, password, confirmPassword, email string) (*model.User, error)
	Login(ctx context.Context, username, password string) (accessToken string, err error)
	ValidateToken(ctx context.Context, token string) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	validator  *RegisterValidator
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		validator:  NewRegisterValidator(),
	}
}

// Register validates the input, checks username availability and persists a
// new user with a bcrypt-hashed password. The username pre-check is advisory
// only: the unique index on username is the real guard against a concurrent
// duplicate registration, surfaced as gorm.ErrDuplicatedKey.
func (s *authService) Register(ctx context.Context, username, password, confirmPassword, email string) (*model.User, error) {
	if fields := s.validator.ValidateInput(username, password, confirmPassword, email); fields != nil {
		return nil, errors.NewValidationError(fields)
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username availability: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		Email:        email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token. An unknown
// username and a wrong password return the identical error.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrAuthenticationFailed
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrAuthenticationFailed
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// ValidateToken verifies the token signature and expiry, then resolves the
// encoded user against the store.
func (s *authService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

// UpdateAvatar overwrites the user's avatar with an already-stored file URI.
// File content is the upload boundary's responsibility, not this service's.
func (s *authService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (string, error) {
	if err := s.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("update avatar: %w", err)
	}
	return avatarURL, nil
}
