package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/placebetween/internal/api"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
)

const defaultTokenTTL = time.Hour

// JWTService verifies tokens issued by the Place Between backend. With an
// empty secret tokens are decoded without signature checks, which is only
// meant for local development against a backend whose secret is unknown.
type JWTService struct {
	secret []byte
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

func (s *JWTService) Verifying() bool {
	return len(s.secret) > 0
}

func (s *JWTService) GenerateToken(subject, username string, ttl time.Duration) (string, error) {
	if !s.Verifying() {
		return "", errors.New("token generation error: empty secret")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := time.Now()
	claims := &api.JWTClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	if !s.Verifying() {
		return s.parseUnverified(tokenString)
	}
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTService) parseUnverified(tokenString string) (*api.JWTClaims, error) {
	claims := &api.JWTClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
