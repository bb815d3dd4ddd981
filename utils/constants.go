// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// AvailabilityCachePrefix is the prefix for cached per-doctor availability
// snapshots. Snapshots are advisory; reserve re-validates against Mongo.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL keeps snapshot staleness bounded.
const AvailabilityCacheTTL = 30 * time.Second
