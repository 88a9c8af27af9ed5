package qcache

import (
	"context"
	"fmt"

	"github.com/clubsphere/backend/pkg/xcontext"
)

// New picks the backend named by the configuration. Memory is the
// default and needs no infrastructure; redis is for deployments that
// share one cache between processes.
func New(ctx context.Context) (Cache, error) {
	backend := xcontext.Configs(ctx).Cache.Backend
	switch backend {
	case "", "memory":
		return NewMemoryCache(), nil
	case "redis":
		return NewRedisCache(ctx)
	}

	return nil, fmt.Errorf("unknown cache backend %s", backend)
}
