package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/auth"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/user"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newUser.Name, newUser.Email, newUser.PasswordHash).
		Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return usr, nil
}

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) user.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements user.SessionRepository.
func (s *sessionRepositoryImpl) Create(ctx context.Context, session user.Session) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO sessions (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, session.ID, session.UserID, session.Token, session.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID implements user.SessionRepository.
func (s *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (user.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, user_id, token, expires_at, revoked_at, created_at
		FROM sessions
		WHERE id = $1
	`

	var session user.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.UserID, &session.Token,
		&session.ExpiresAt, &session.RevokedAt, &session.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Session{}, auth.ErrRefreshTokenRevoked
		}
		return user.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// Revoke implements user.SessionRepository.
func (s *sessionRepositoryImpl) Revoke(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE sessions
		SET revoked_at = NOW()
		WHERE id = $1 AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
