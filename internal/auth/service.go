package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "league-results-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed to change league data
const RoleAdmin = "admin"

const (
	tokenIssuer     = "league-results-backend"
	defaultTokenTTL = 12 * time.Hour
)

// AuthClaims are the claims carried by admin bearer tokens
type AuthClaims struct {
	Username string `json:"username" example:"race-director"`
	Role     string `json:"role" example:"admin"`
	jwt.RegisteredClaims
}

// AuthService issues and validates HS256 admin tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an auth service. A zero ttl uses the default lifetime.
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateJWT creates a token for the user with the given role
func (s *AuthService) GenerateJWT(username, role string) (string, error) {
	if username == "" {
		return "", errors.New("username is required")
	}

	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a token. Every failure wraps apperrors.ErrInvalidToken.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
