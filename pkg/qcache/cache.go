// Package qcache is a keyed cache for gateway query results. Reads go
// through GetOrFetch, which collapses concurrent identical reads into a
// single gateway call. Entries never expire on their own; mutations
// invalidate the keys they affect and the next read re-fetches.
package qcache

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/clubsphere/backend/pkg/errorx"
)

// Key identifies one cached query result as an ordered tuple of an
// entity tag plus its filter values, e.g. ("clubEvents", clubID).
type Key struct {
	Tag  string
	Args []string
}

func NewKey(tag string, args ...string) Key {
	return Key{Tag: tag, Args: args}
}

func (k Key) String() string {
	if len(k.Args) == 0 {
		return k.Tag
	}

	return k.Tag + "/" + strings.Join(k.Args, "/")
}

type FetchFunc func(ctx context.Context) (any, error)

type Cache interface {
	// GetOrFetch returns the cached value for key, issuing exactly one
	// fetch on a miss no matter how many callers arrive concurrently.
	// A failed fetch is not cached.
	GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (any, error)

	// Invalidate drops the given entries. Missing keys are ignored.
	Invalidate(ctx context.Context, keys ...Key)

	// InvalidateTag drops every entry whose key carries the given tag,
	// regardless of filter values.
	InvalidateTag(ctx context.Context, tag string)
}

// Fetch is the typed read-through helper the domain layer uses.
func Fetch[T any](ctx context.Context, c Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	if typed, ok := v.(T); ok {
		return typed, nil
	}

	// Shared backends hand back serialized entries.
	if raw, ok := v.(json.RawMessage); ok {
		var typed T
		if err := json.Unmarshal(raw, &typed); err != nil {
			return zero, errorx.New(errorx.Internal, "Malformed cache entry for %s", key)
		}

		return typed, nil
	}

	return zero, errorx.New(errorx.Internal, "Unexpected cache entry type for %s", key)
}
