package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sharda-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		// Short lock TTL so a crashed request does not block retries forever.
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Request is already being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// CompleteIdempotency stores data for replay and releases the lock. Handlers
// call it after a successful write; failures only release the lock.
func CompleteIdempotency(c *gin.Context, rdb *redis.Client, data any, succeeded bool) {
	if rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	if succeeded {
		if raw, err := json.Marshal(data); err == nil {
			rdb.Set(ctx, cacheKey, string(raw), idempotencyResultTTL)
		}
	}
	rdb.Del(ctx, lockKey)
}
