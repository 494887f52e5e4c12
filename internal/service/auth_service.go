package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAuthDisabled = errors.New("authentication is not configured")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService issues and validates profile tokens. With an empty
// secret the server runs open, which is fine for a device-local game.
type AuthService struct {
	secret        []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenDuration time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), tokenDuration: tokenDuration}
}

// Enabled reports whether token authentication is configured
func (s *AuthService) Enabled() bool {
	return len(s.secret) > 0
}

// IssueToken signs a JWT for the given profile
func (s *AuthService) IssueToken(profileID int64, username string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrAuthDisabled
	}

	exp := time.Now().Add(s.tokenDuration)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", profileID),
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// ValidateToken parses a token and returns the profile ID it names
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	if !s.Enabled() {
		return 0, ErrAuthDisabled
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrInvalidToken
	}

	var profileID int64
	if _, err := fmt.Sscanf(sub, "%d", &profileID); err != nil {
		return 0, ErrInvalidToken
	}
	return profileID, nil
}
