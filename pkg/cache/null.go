package cache

import (
	"context"
	"time"
)

// Disabled returns a cache that keeps nothing, so every figure is rendered
// again. The CLI uses it for --no-cache and when no cache directory can be
// found.
func Disabled() Cache {
	return disabled{}
}

type disabled struct{}

func (disabled) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (disabled) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (disabled) Delete(context.Context, string) error { return nil }

func (disabled) Close() error { return nil }
