package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	ContextIdempotencyCacheKey = "idempotency_cache_key"
	ContextIdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

// Idempotency replays a cached response for a repeated POST carrying the same
// Idempotency-Key, and rejects a duplicate that arrives while the first one is
// still running. The handler stores its response with CompleteIdempotency.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ContextEmployeeID), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.SuccessWithMessage(c, http.StatusOK, "Replayed", cached)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis down: let the request through, the storage guards still hold
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "Request is already being processed", nil)
			c.Abort()
			return
		}

		c.Set(ContextIdempotencyCacheKey, cacheKey)
		c.Set(ContextIdempotencyLockKey, lockKey)

		c.Next()
	}
}

// CompleteIdempotency releases the lock taken by Idempotency and, when data is
// not nil, caches it for replays. It is a no-op when the middleware did not run.
func CompleteIdempotency(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if lk := c.GetString(ContextIdempotencyLockKey); lk != "" {
		defer rdb.Del(ctx, lk)
	}

	ck := c.GetString(ContextIdempotencyCacheKey)
	if ck == "" || data == nil {
		return
	}
	if payload, err := json.Marshal(data); err == nil {
		_ = rdb.Set(ctx, ck, payload, idempotencyCacheTTL).Err()
	}
}
