package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

type Service interface {
	GenerateAccessToken(userID int64, email string) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64, sessionID string) (token string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (userID int64, sessionID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID int64, sessionID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":    userID,
		"session_id": sessionID,
		"type":       "refresh",
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}

// ParseRefreshToken validates a refresh token and extracts its subject
// and session id.
func (j *JWTService) ParseRefreshToken(tokenString string) (int64, string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return 0, "", ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return 0, "", ErrInvalidToken
	}
	// Numeric claims decode as float64.
	userIDFloat, ok := userIDVal.(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	sessionIDVal, ok := token.Get("session_id")
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sessionID, ok := sessionIDVal.(string)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	return int64(userIDFloat), sessionID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}
