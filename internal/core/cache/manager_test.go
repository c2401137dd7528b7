package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"
)

func testManager(t *testing.T, maxSize int, ttl time.Duration) *Manager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = config.CacheBackendMemory
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Hour // 由測試自行驗證過期，不靠清理協程

	m := newManager(cfg)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManagerGetSet(t *testing.T) {
	m := testManager(t, 10, time.Minute)
	ctx := context.Background()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get(missing) error = %v, want ErrCacheMiss", err)
	}

	if err := m.Set(ctx, "k1", `{"score":51}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := m.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get after Set failed: %v", err)
	}
	if value != `{"score":51}` {
		t.Errorf("value = %q", value)
	}
}

func TestManagerExpiry(t *testing.T) {
	m := testManager(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	if err := m.Set(ctx, "k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := m.Get(ctx, "k1"); !errors.Is(err, common.ErrCacheMiss) {
		t.Errorf("expired Get error = %v, want ErrCacheMiss", err)
	}
}

func TestManagerLRUEviction(t *testing.T) {
	m := testManager(t, 2, time.Minute)
	ctx := context.Background()

	if err := m.Set(ctx, "old", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Set(ctx, "hot", "v2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// 提高 hot 的存取次數，讓 old 成為 LRU 淘汰對象
	if _, err := m.Get(ctx, "hot"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if err := m.Set(ctx, "new", "v3"); err != nil {
		t.Fatalf("Set into full cache failed: %v", err)
	}

	if _, err := m.Get(ctx, "old"); !errors.Is(err, common.ErrCacheMiss) {
		t.Errorf("expected old entry evicted, got err = %v", err)
	}
	if _, err := m.Get(ctx, "hot"); err != nil {
		t.Errorf("hot entry should survive eviction: %v", err)
	}
	if _, err := m.Get(ctx, "new"); err != nil {
		t.Errorf("new entry should be present: %v", err)
	}
}

func TestManagerStats(t *testing.T) {
	m := testManager(t, 10, time.Minute)
	ctx := context.Background()

	_ = m.Set(ctx, "k1", "v1")
	_, _ = m.Get(ctx, "k1")
	_, _ = m.Get(ctx, "nope")

	stats := m.Stats()
	if stats["backend"] != config.CacheBackendMemory {
		t.Errorf("backend = %v", stats["backend"])
	}
	if stats["hits"].(int64) != 1 || stats["misses"].(int64) != 1 {
		t.Errorf("hits/misses = %v/%v, want 1/1", stats["hits"], stats["misses"])
	}
	if stats["hit_ratio"].(float64) != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", stats["hit_ratio"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}

func TestNewDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	store, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store != nil {
		t.Errorf("disabled cache should yield nil store, got %v", store)
	}
}

func TestKey(t *testing.T) {
	a := Key("pair", "jaccard", "1", "2")
	b := Key("pair", "jaccard", "1", "2")
	c := Key("pair", "jaccard", "2", "1")

	if a != b {
		t.Error("identical parts should yield identical keys")
	}
	if a == c {
		t.Error("different parts should yield different keys")
	}
	if !strings.HasPrefix(a, "pairing:") {
		t.Errorf("key %q should carry pairing: prefix", a)
	}
}
