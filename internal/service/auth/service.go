package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/auth"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/user"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/jwt"
	"github.com/clockwork-labs/timetrack-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	sessionRepo user.SessionRepository
	jwtService  jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, sessionRepo user.SessionRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.UserResponse{}, auth.ErrEmailExists
	} else if err != auth.ErrUserNotFound {
		return auth.UserResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{ID: created.ID, Name: created.Name, Email: created.Email}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == auth.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, sessionID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	session, err := a.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if session.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(session.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the old session dies with the refresh.
	var tokens auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.sessionRepo.Revoke(txCtx, sessionID); err != nil {
			return err
		}
		tokens, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokens, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, sessionID, err := a.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}
	return a.sessionRepo.Revoke(ctx, sessionID)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	sessionID := uuid.NewString()
	tokens.RefreshToken, tokens.RefreshTokenExpiresAt, err = a.jwtService.GenerateRefreshToken(userData.ID, sessionID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.sessionRepo.Create(ctx, user.Session{
		ID:        sessionID,
		UserID:    userData.ID,
		Token:     tokens.RefreshToken,
		ExpiresAt: time.Unix(tokens.RefreshTokenExpiresAt, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save session: %w", err)
	}

	return tokens, nil
}
