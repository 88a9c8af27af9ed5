package common

import (
	"context"

	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/pkg/errorx"
	"github.com/clubsphere/backend/pkg/xcontext"
)

// CurrentUser returns the identity attached to the context. Every
// mutating operation calls this before touching identifiers or rows.
func CurrentUser(ctx context.Context) (model.AccessToken, error) {
	user := xcontext.RequestUser(ctx)
	if user.ID == "" {
		return model.AccessToken{}, errorx.New(errorx.Unauthenticated, "You must sign in to perform this action")
	}

	return user, nil
}
