package idutil_test

import (
	"strings"
	"testing"

	"github.com/clubsphere/backend/pkg/idutil"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	require.True(t, idutil.Valid("11111111-1111-4111-8111-111111111111"))
	require.True(t, idutil.Valid("a3bb189e-8bf9-3888-9912-ace4e6543002"))
	require.True(t, idutil.Valid(strings.ToUpper("a3bb189e-8bf9-3888-9912-ace4e6543002")))

	// version nibble outside 1..5
	require.False(t, idutil.Valid("11111111-1111-6111-8111-111111111111"))
	require.False(t, idutil.Valid("11111111-1111-0111-8111-111111111111"))

	// variant nibble outside 8..b
	require.False(t, idutil.Valid("11111111-1111-4111-c111-111111111111"))
	require.False(t, idutil.Valid("11111111-1111-4111-7111-111111111111"))

	// legacy seed-data ids
	require.False(t, idutil.Valid("1"))
	require.False(t, idutil.Valid("u3"))
	require.False(t, idutil.Valid(""))

	require.False(t, idutil.Valid("11111111-1111-4111-8111-11111111111"))
	require.False(t, idutil.Valid("11111111-1111-4111-8111-1111111111111"))
	require.False(t, idutil.Valid("11111111111141118111111111111111"))
	require.False(t, idutil.Valid(" 11111111-1111-4111-8111-111111111111"))
	require.False(t, idutil.Valid("g1111111-1111-4111-8111-111111111111"))
}

func TestNewIsCanonical(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.True(t, idutil.Valid(idutil.New()))
	}
}
