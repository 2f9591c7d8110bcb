package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked per concern so a commit can clear every cached
// month-level view in one call.
var (
	Cache              *ristretto.Cache
	RebalanceCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	SettlementCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Rebalance Cache Functions
func SetRebalanceCache(cacheKey string, value interface{}) {
	RebalanceCacheKeys.Lock()
	RebalanceCacheKeys.m[cacheKey] = struct{}{}
	RebalanceCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllRebalanceCaches() {
	RebalanceCacheKeys.Lock()
	for key := range RebalanceCacheKeys.m {
		Cache.Del(key)
	}
	RebalanceCacheKeys.m = make(map[string]struct{})
	RebalanceCacheKeys.Unlock()
}

// Settlement Cache Functions
func SetSettlementCache(cacheKey string, value interface{}) {
	SettlementCacheKeys.Lock()
	SettlementCacheKeys.m[cacheKey] = struct{}{}
	SettlementCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllSettlementCaches() {
	SettlementCacheKeys.Lock()
	for key := range SettlementCacheKeys.m {
		Cache.Del(key)
	}
	SettlementCacheKeys.m = make(map[string]struct{})
	SettlementCacheKeys.Unlock()
}
