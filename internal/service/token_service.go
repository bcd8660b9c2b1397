package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers bad signatures and structurally broken tokens.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired covers well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrNoSigningSecret means the process-wide secret was never configured.
	// This is unrecoverable for the request, not retried.
	ErrNoSigningSecret = errors.New("signing secret is not configured")
)

// Claims extends standard JWT claims with the subject user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// TokenService produces and consumes signed bearer tokens. Parse is pure:
// no I/O, fully deterministic given the secret and wall-clock time.
type TokenService interface {
	Issue(userID uint) (string, error)
	Parse(tokenString string) (*Claims, error)
	Lifetime() time.Duration
}

type tokenService struct {
	secret   string
	lifetime time.Duration
}

// NewTokenService constructs a TokenService.
//
//	secret   – HMAC signing secret
//	lifetime – token validity window (15m by default via config)
func NewTokenService(secret string, lifetime time.Duration) TokenService {
	return &tokenService{
		secret:   secret,
		lifetime: lifetime,
	}
}

func (s *tokenService) Issue(userID uint) (string, error) {
	if s.secret == "" {
		return "", ErrNoSigningSecret
	}

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			Subject:   "access_token",
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *tokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

func (s *tokenService) Lifetime() time.Duration {
	return s.lifetime
}
