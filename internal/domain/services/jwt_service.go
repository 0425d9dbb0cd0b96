package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceJWTService defines the token issuing service
type InterfaceJWTService interface {
	GenerateToken(email string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractEmail(tokenString string) (string, error)
}

// JWTService issues and verifies the admin bearer tokens
type JWTService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

// JWTClaims defines the claims carried by an admin token. The admin's email
// travels in the registered subject claim.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	ttlHours := cfg.TokenExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "esweb-http-service",
		ttl:       time.Duration(ttlHours) * time.Hour,
	}
}

// GenerateToken generates a signed token for the admin identified by email
func (s *JWTService) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken verifies the signature and expiry of a token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractEmail returns the admin email carried by a valid token
func (s *JWTService) ExtractEmail(tokenString string) (string, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("token carries no subject")
	}

	return email, nil
}
