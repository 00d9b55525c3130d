// Package ratelimit throttles signin attempts per client, shared across
// server instances through Redis.
package ratelimit

import "context"

// Limits caps attempts over two sliding windows. A zero or negative value
// disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// Limiter answers whether one more attempt under the given key is allowed.
// The attempt is recorded either way, so hammering a denied key does not
// free it up.
type Limiter interface {
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
}
