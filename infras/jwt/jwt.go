package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const RoleAdmin = "admin"

// Claims carries the session id in the registered jti claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionID returns the jti claim.
func (c *Claims) SessionID() string {
	return c.ID
}

// JWT signs and verifies the admin session cookie value.
type JWT interface {
	GenerateSessionToken(sessionID string) (token string, expiresAt time.Time, err error)
	ValidateSessionToken(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

func (s *Service) ttl() time.Duration {
	return time.Duration(s.config.Session.TTLMinutes) * time.Minute
}

// GenerateSessionToken signs an HS256 token for the given session id.
func (s *Service) GenerateSessionToken(sessionID string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, ErrInvalidClaim
	}

	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(s.ttl())

	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   RoleAdmin,
			ID:        sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// ValidateSessionToken validates and parses a session token
func (s *Service) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ID == "" || claims.Role != RoleAdmin {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
