package xcontext

import (
	"context"

	"github.com/clubsphere/backend/config"
	"github.com/clubsphere/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	tokenEngineKey struct{}
	requestUserKey struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		panic("no configs in context")
	}

	return cfg
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		panic("no logger in context")
	}

	return l
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the gateway table client carried by this context.
func DB(ctx context.Context) *gorm.DB {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}
