package config

import "time"

// Cache intervals
const (
	// CacheSweepInterval defines how often stale renderer-cache generations are pruned
	CacheSweepInterval = 30 * time.Second

	// TileCacheTTL defines how long decoded tile payloads stay in Redis
	TileCacheTTL = 10 * time.Minute
)
