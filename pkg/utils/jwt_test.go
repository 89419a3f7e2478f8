package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEnabled_FollowsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.False(t, AuthEnabled())

	// A secret set after package init (the .env load path) must still
	// enable auth.
	t.Setenv("JWT_SECRET", "super-secret")
	assert.True(t, AuthEnabled())
}

func TestCreateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")

	tok, err := CreateToken("ops-cli", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops-cli", claims.ClientName)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	tok, err := CreateToken("ops-cli", time.Minute)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	tok, err := CreateToken("ops-cli", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tok)
	assert.Error(t, err)
}
