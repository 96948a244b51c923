package cache

import "context"

// Cache is a small string cache used to memoize lookups that are expensive or
// rate-limited upstream (currently IP geolocation).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
