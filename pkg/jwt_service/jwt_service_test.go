package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jwtservice "github.com/limbo/placebetween/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret")
	token, err := s.GenerateToken("42", "mira", time.Minute)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "mira", claims.Username)
}

func TestParseToken(t *testing.T) {
	s := jwtservice.New("secret")
	other := jwtservice.New("other")
	foreign, err := other.GenerateToken("42", "", time.Minute)
	require.NoError(t, err)
	defaulted, err := s.GenerateToken("42", "", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		Desc    string
		Token   string
		WantErr bool
	}{
		{Desc: "wrong secret", Token: foreign, WantErr: true},
		{Desc: "garbage", Token: "not.a.token", WantErr: true},
		{Desc: "empty", Token: "", WantErr: true},
		// negative ttl falls back to the default
		{Desc: "default ttl", Token: defaulted, WantErr: false},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			if tc.WantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUnverifiedMode(t *testing.T) {
	signed, err := jwtservice.New("backend-secret").GenerateToken("7", "", time.Minute)
	require.NoError(t, err)

	dev := jwtservice.New("")
	assert.False(t, dev.Verifying())
	claims, err := dev.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)

	_, err = dev.GenerateToken("7", "", time.Minute)
	assert.Error(t, err)

	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	staleStr, err := stale.SignedString([]byte("x"))
	require.NoError(t, err)
	_, err = dev.ParseToken(staleStr)
	assert.Error(t, err)
}
