package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	jwtservice "github.com/limbo/placebetween/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("PB_STORE_DRIVER", "memory")
	os.Setenv("PB_JWT_SECRET", "secret")
	os.Setenv("PB_TIMEZONE", "UTC")
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTodayCommand(t *testing.T) {
	out, err := execute(t, "today", "--phase", "night", "--json", "--user", "")
	require.NoError(t, err)
	result := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.UnmarshalFromString(out, &result))
	assert.Equal(t, "night", result["phase"])
	pillars, ok := result["pillars"].([]any)
	require.True(t, ok)
	assert.Len(t, pillars, 3)

	out, err = execute(t, "today", "--phase", "day", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "recommended")
	assert.Contains(t, out, "Progress: 0/4")

	_, err = execute(t, "today", "--phase", "dusk")
	assert.Error(t, err)
}

func TestPointsCommand(t *testing.T) {
	out, err := execute(t, "points", "--date", "2026-10-19", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "total")

	_, err = execute(t, "points", "--date", "19.10.2026")
	assert.Error(t, err)
}

func TestPurgeCommand(t *testing.T) {
	out, err := execute(t, "purge", "--older-than", "1h", "--json=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Removed 0 entries"))

	_, err = execute(t, "purge", "--older-than", "0s")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	out, err := execute(t, "token", "--user", "42", "--username", "mira", "--json=false")
	require.NoError(t, err)
	claims, err := jwtservice.New("secret").ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "mira", claims.Username)

	_, err = execute(t, "token", "--user", "")
	assert.Error(t, err)
}
