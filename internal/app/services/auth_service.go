package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/app/models/dto"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
	"github.com/mattwebdev/devcamper/internal/pkg/auth"
)

// UserStore defines the user persistence operations the auth service needs
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account and returns a signed token
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleUser
	}
	if role == models.RoleAdmin {
		return nil, apperrors.ErrRoleNotAssignable
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.issueToken(user)
}

// Login verifies credentials and returns a signed token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return s.issueToken(user)
}

// GetCurrentUser retrieves the authenticated user's profile
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authServiceImpl) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
