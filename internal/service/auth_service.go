package service

import (
	"context"
	"fmt"
	"time"

	"stock-api/internal/auth"
	"stock-api/internal/model"
	"stock-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo   repository.UserRepository
	issuer     *auth.TokenIssuer
	bcryptCost int
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, issuer *auth.TokenIssuer, bcryptCost int, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account and returns its public fields plus an
// issued token. Email uniqueness is settled by the store's unique index,
// so a concurrent duplicate registration loses cleanly.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == model.ErrEmailTaken {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return &model.AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and returns the user plus an issued token.
// Unknown email and wrong password produce the same generic error.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		if err == auth.ErrPasswordMismatch {
			s.logger.Debug().Str("user_id", user.ID.String()).Msg("password mismatch")
			return nil, model.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("failed to compare password")
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return &model.AuthResult{User: user, Token: token}, nil
}
