package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

func cacheKey(path string, body []byte) string {
	sum := sha256.Sum256(body)
	return "loanapi:resp:" + path + ":" + hex.EncodeToString(sum[:])
}

// ---- Redis helpers ----

func loadResponse(ctx context.Context, rdb *redis.Client, key string) (cachedResponse, error) {
	var r cachedResponse
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return r, err
	}
	err = json.Unmarshal(v, &r)
	return r, err
}

func saveResponse(ctx context.Context, rdb *redis.Client, key string, r cachedResponse, ttl time.Duration) error {
	payload, _ := json.Marshal(r)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
