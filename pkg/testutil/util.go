package testutil

import (
	"context"
	"time"

	"github.com/clubsphere/backend/config"
	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/internal/model"
	"github.com/clubsphere/backend/pkg/authenticator"
	"github.com/clubsphere/backend/pkg/logger"
	"github.com/clubsphere/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		File: config.FileConfigs{
			MaxSize: 2 * 1024 * 1024,
		},
		Cache: config.CacheConfigs{
			Backend: "memory",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewSilentLogger())
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUser(user model.AccessToken) context.Context {
	return xcontext.WithRequestUser(MockContext(), user)
}

func MockContextWithUserID(userID string) context.Context {
	return MockContextWithUser(model.AccessToken{ID: userID})
}
