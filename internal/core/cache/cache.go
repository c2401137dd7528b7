package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"
)

// Store 查詢結果快取的共用介面。值為序列化後的 JSON 字串。
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定選擇快取後端。停用時回傳 nil Store。
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("快取已停用")
		return nil, nil
	}
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return newRedisStore(cfg)
	default:
		return newManager(cfg), nil
	}
}

// Key 組合查詢簽名為快取鍵
func Key(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("pairing:%s", hex.EncodeToString(hash[:16]))
}
