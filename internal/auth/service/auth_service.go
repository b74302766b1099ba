package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/domain"
)

const DefaultTokenTTL = 30 * 24 * time.Hour

// AuthService issues and verifies HS256 tokens for the single configured
// admin. Tokens are stateless; rotating the secret invalidates all of them.
type AuthService struct {
	adminUser     string
	adminPassword string
	secret        []byte
	ttl           time.Duration
	now           func() time.Time
}

func NewAuthService(adminUser, adminPassword, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		adminUser:     adminUser,
		adminPassword: adminPassword,
		secret:        []byte(secret),
		ttl:           ttl,
		now:           time.Now,
	}
}

// Issue checks the credentials and returns a signed token.
func (s *AuthService) Issue(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	if userOK&passOK != 1 || s.adminUser == "" || s.adminPassword == "" {
		return "", domain.ErrWrongCredentials
	}

	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: signing secret is empty", domain.ErrTokenCreation)
	}

	now := s.now()
	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.AdminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenCreation, err)
	}
	return token, nil
}

// Verify parses a token and checks signature, algorithm and expiry.
func (s *AuthService) Verify(token string) (*domain.Claims, error) {
	if token == "" || len(s.secret) == 0 {
		return nil, domain.ErrInvalidToken
	}

	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.ExpiresAt == nil || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
