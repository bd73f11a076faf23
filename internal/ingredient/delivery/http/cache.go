package http

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodgram/foodgram-backend/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL time.Duration
}

// DefaultCacheConfig returns default cache configuration. The catalog
// changes only on bulk import, so a generous TTL is safe.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{DefaultTTL: 5 * time.Minute}
}

// cacheRecorder buffers the response so a cacheable body can be stored.
type cacheRecorder struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

func (cr *cacheRecorder) WriteHeader(code int) {
	cr.statusCode = code
	cr.ResponseWriter.WriteHeader(code)
}

func (cr *cacheRecorder) Write(b []byte) (int, error) {
	cr.body = append(cr.body, b...)
	return cr.ResponseWriter.Write(b)
}

// CacheMiddleware implements GET response caching with Redis. A nil
// client disables caching entirely.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := generateCacheKey(r)
		ctx := r.Context()

		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		rec := &cacheRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.statusCode != http.StatusOK {
			return
		}

		if err := redisClient.Set(ctx, cacheKey, rec.body, config.DefaultTTL).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", cacheKey).
				Msg("Failed to cache response")
			return
		}
		logger.Logger.Debug().
			Str("path", r.URL.Path).
			Str("cache_key", cacheKey).
			Dur("ttl", config.DefaultTTL).
			Int("size", len(rec.body)).
			Msg("Response cached")
	}
}

// generateCacheKey hashes method, path and query into a stable key.
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}
