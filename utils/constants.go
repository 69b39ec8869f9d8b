// File: utils/constants.go
package utils

import "time"

// CredentialCachePrefix is the prefix used for Redis credential cache keys.
const CredentialCachePrefix = "credential:"

// TripSessionPrefix is the prefix used for Redis trip session keys.
const TripSessionPrefix = "trip:"

// RecentCitiesPrefix is the prefix for per-session recently-used location lists.
const RecentCitiesPrefix = "recent-cities:"

// SuggestSeqPrefix is the prefix for per-session typeahead sequence counters.
const SuggestSeqPrefix = "suggest-seq:"

// LoadMorePrefix is the prefix for per-session load-more busy flags.
const LoadMorePrefix = "load-more:"

// TripSessionTTL is the time-to-live for trip session entries.
const TripSessionTTL = 24 * time.Hour

// CredentialTTL is the time-to-live for stored per-session credentials.
const CredentialTTL = 30 * 24 * time.Hour

// LoadMoreTTL bounds how long a load-more busy flag may linger after a crash.
const LoadMoreTTL = 45 * time.Second

// MaxRecentCities bounds the recently-used locations list.
const MaxRecentCities = 10
