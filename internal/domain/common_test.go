package domain

import (
	"testing"

	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
}
