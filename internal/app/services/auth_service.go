package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
	"github.com/yigit/unitutor/internal/pkg/auth"
	"github.com/yigit/unitutor/internal/pkg/validation"
)

// AuthService defines registration and login operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func validateRegistration(req *dto.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: registration is nil", apperrors.ErrValidationFailed)
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return apperrors.NewValidationError("name", "name "+err.Error())
	}
	if err := validation.ValidateName(req.Surname); err != nil {
		return apperrors.NewValidationError("surname", "surname "+err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return apperrors.NewValidationError("password", "password "+err.Error())
	}
	return nil
}

// Register creates a user. Passing subjects makes the user a professor for those slugs.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if err := validateRegistration(req); err != nil {
		return err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:           strings.TrimSpace(req.Name),
		Surname:        strings.TrimSpace(req.Surname),
		Email:          req.Email,
		Password:       hashedPassword,
		ProfilePicture: req.ProfilePicture,
		Subjects:       req.Subjects,
	}
	if user.Subjects != nil {
		count := 0
		user.InstructionsCount = &count
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Bool("professor", user.Subjects != nil).Msg("User registered")
	return nil
}

// Login verifies credentials and issues an access token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Int64("userID", user.ID).Msg("Login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
