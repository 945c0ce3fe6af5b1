package execute

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/jellydator/ttlcache/v3"
	"hermannm.dev/datapanel/db"
)

// NewResultCache returns the cache of fully processed query results used by the
// Executor. Entries are stored without expiry (the cache lives as long as the process),
// keyed by a hash of the exact query text. The cache is safe for concurrent use.
func NewResultCache() *ttlcache.Cache[string, db.QueryResult] {
	return ttlcache.New[string, db.QueryResult]()
}

// cacheKey hashes the exact query text, so that semantically identical but textually
// different queries miss.
func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
