package xcontext

import (
	"context"

	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/pkg/authenticator"
)

// WithRequestUser attaches the resolved identity of the caller. The
// embedding application sets it once after verifying the session token;
// every mutating operation reads it back through RequestUser.
func WithRequestUser(ctx context.Context, user model.AccessToken) context.Context {
	return context.WithValue(ctx, requestUserKey{}, user)
}

func RequestUser(ctx context.Context) model.AccessToken {
	user, ok := ctx.Value(requestUserKey{}).(model.AccessToken)
	if !ok {
		return model.AccessToken{}
	}

	return user
}

func RequestUserID(ctx context.Context) string {
	return RequestUser(ctx).ID
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
	if !ok {
		panic("no token engine in context")
	}

	return engine
}
