// Package auth provides JWT-based admin authorization. Admin identity is
// carried per-request in the token; there is no ambient session state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default leeway for token validation.
const DefaultLeeway = 30 * time.Second

// ErrInvalidToken is returned when token validation fails.
var ErrInvalidToken = errors.New("invalid token")

// ErrExpiredToken is returned when the token has expired.
var ErrExpiredToken = errors.New("token has expired")

// ErrEmptyUserID is returned when userID is empty.
var ErrEmptyUserID = errors.New("userID cannot be empty")

// AdminClaims are the custom JWT claims for admin tokens.
type AdminClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm"`
}

// AdminTokenService mints and verifies admin access tokens.
type AdminTokenService struct {
	secret []byte
	ttl    time.Duration
	leeway time.Duration
}

// NewAdminTokenService creates a token service with the given signing secret
// and token lifetime.
func NewAdminTokenService(secret string, ttl time.Duration) *AdminTokenService {
	return &AdminTokenService{secret: []byte(secret), ttl: ttl, leeway: DefaultLeeway}
}

// Mint issues a signed admin token for the given user.
func (s *AdminTokenService) Mint(userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}
	now := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Admin: true,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Tokens not
// carrying the admin claim are rejected.
func (s *AdminTokenService) Verify(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithLeeway(s.leeway))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || !claims.Admin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
