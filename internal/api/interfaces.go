package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries the identity issued by the Place Between backend.
// Subject is the user id.
type JWTClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}
