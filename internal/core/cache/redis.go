package cache

import (
	"context"
	"sync/atomic"
	"time"

	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisStore 以 Redis 為後端的結果快取，多副本部署時共用
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	hits   int64
	misses int64
}

// newRedisStore 建立 Redis 快取並驗證連線
func newRedisStore(cfg *config.Config) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		common.LogError("Redis 連線失敗",
			zap.String("位址", cfg.Cache.RedisAddr),
			zap.Error(err),
		)
		return nil, err
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", config.CacheBackendRedis),
		zap.String("位址", cfg.Cache.RedisAddr),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return &redisStore{
		client: client,
		ttl:    cfg.Cache.TTL,
	}, nil
}

// Get 讀取快取值，未命中回傳 ErrCacheMiss
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		atomic.AddInt64(&s.misses, 1)
		common.LogCacheMiss(config.CacheBackendRedis, key)
		return "", common.ErrCacheMiss
	}
	if err != nil {
		common.LogError("Redis 讀取失敗", zap.String("鍵", key), zap.Error(err))
		return "", err
	}
	atomic.AddInt64(&s.hits, 1)
	common.LogCacheHit(config.CacheBackendRedis, key)
	return value, nil
}

// Set 寫入快取值，帶 TTL
func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		common.LogError("Redis 寫入失敗", zap.String("鍵", key), zap.Error(err))
		return err
	}
	return nil
}

// Stats 快取統計資訊
func (s *redisStore) Stats() map[string]interface{} {
	hits := atomic.LoadInt64(&s.hits)
	misses := atomic.LoadInt64(&s.misses)
	total := hits + misses
	var ratio float64
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return map[string]interface{}{
		"backend":   config.CacheBackendRedis,
		"hits":      hits,
		"misses":    misses,
		"hit_ratio": ratio,
	}
}

// Close 關閉 Redis 連線
func (s *redisStore) Close() error {
	return s.client.Close()
}
