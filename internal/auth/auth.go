// Package auth verifies the admin credential pair against bcrypt hashes and
// mints short-lived HS256 bearer tokens carrying the admin role. Secret and
// hashes are injected at startup; nothing is compiled in.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret       []byte
	usernameHash []byte
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewService(secret, usernameHash, passwordHash string, ttl time.Duration) *Service {
	return &Service{
		secret:       []byte(secret),
		usernameHash: []byte(usernameHash),
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Login checks both credentials and returns a signed token plus its
// lifetime. Both hashes are compared regardless of which one fails, so a
// wrong username takes as long as a wrong password.
func (s *Service) Login(username, password string) (string, time.Duration, error) {
	userErr := bcrypt.CompareHashAndPassword(s.usernameHash, []byte(username))
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if userErr != nil || passErr != nil {
		return "", 0, ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return token, s.ttl, nil
}

// Verify parses and validates a bearer token. Callers check Claims.Role.
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
