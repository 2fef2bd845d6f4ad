// File: utils/constants.go
package utils

import "time"

// UserSessionPrefix is the prefix used for Redis user session keys.
const UserSessionPrefix = "session:user:"

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "session:booking:"

// FeedCachePrefix is the prefix used for Redis feed cache keys.
const FeedCachePrefix = "feed:listings:"

// FeedCacheTTL is the time-to-live for cached feed snapshots.
const FeedCacheTTL = 5 * time.Minute
