package authenticator_test

import (
	"testing"
	"time"

	"github.com/clubsphere/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine("secret")
	token, err := engine.Generate(time.Minute, claims{ID: "abc", Role: "student"})
	require.NoError(t, err)

	var got claims
	err = engine.Verify(token, &got)
	require.NoError(t, err)
	require.Equal(t, claims{ID: "abc", Role: "student"}, got)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine("secret")
	token, err := engine.Generate(-time.Minute, claims{ID: "abc"})
	require.NoError(t, err)

	var got claims
	err = engine.Verify(token, &got)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine("secret").Generate(time.Minute, claims{ID: "abc"})
	require.NoError(t, err)

	var got claims
	err = authenticator.NewTokenEngine("another").Verify(token, &got)
	require.Error(t, err)
}
