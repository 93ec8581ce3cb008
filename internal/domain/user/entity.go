package user

import "time"

// User is a credential-store record. Application identity (the people
// whose hours are tracked) lives in the employee domain; a user only
// exists so someone can sign in to the dashboard.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a persisted refresh-token session.
type Session struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
