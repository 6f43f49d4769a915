package catalog

import (
	"encoding/json"
	"strconv"
	"time"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	catalogRepo "storefront.GO/model/repository/catalog"
)

// Search results are cached under the catalog tag, keyed by the encoded
// criteria. Redis is the second level when configured; otherwise only the
// in-process cache serves.

func searchTTL() int64 {
	if v := config.GetEnv("SEARCH_CACHE_TTL", ""); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 60
}

func searchKey(c Criteria) string {
	return "search|" + EncodeCriteria(c)
}

// CachedResult returns a previously stored result for c, if any.
func CachedResult(c Criteria) (*Result, bool) {
	key := searchKey(c)
	if v, ok := cache.GetInstance().Get(key); ok {
		if res, isResult := v.(*Result); isResult {
			return res, true
		}
	}
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(config.RedisCtx(), key).Bytes()
		if err == nil {
			var res Result
			if json.Unmarshal(raw, &res) == nil {
				return &res, true
			}
		}
	}
	return nil, false
}

// StoreResult caches a result for c in both levels.
func StoreResult(c Criteria, res *Result) {
	key := searchKey(c)
	ttl := searchTTL()
	cache.GetInstance().Set(key, res, ttl, []string{catalogRepo.CacheTag})
	if config.RedisClient != nil {
		if raw, err := json.Marshal(res); err == nil {
			config.RedisClient.Set(config.RedisCtx(), key, raw, time.Duration(ttl)*time.Second)
		}
	}
}
