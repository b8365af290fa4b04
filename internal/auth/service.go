package auth

import (
	"errors"
	"fmt"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "hostel-directory-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID       `json:"user_id" example:"8f9c2a7e-3c1b-4d2e-9a55-0c8b1e6f4d21"`
	Role   models.UserRole `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService signs and verifies bearer tokens. Signing exists for operators and
// tests; the service itself never hands tokens out over HTTP.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a token service for the given HMAC secret
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.ErrJWTSecretNotSet
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, role models.UserRole) (string, error) {
	if !role.IsValid() {
		return "", apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	now := s.now()
	claims := &AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAuthenticationError("token has expired")
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
