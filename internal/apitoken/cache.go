package apitoken

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is what a resolved token caches.
type Entry struct {
	TokenID   string     `json:"token_id"`
	EmpresaID string     `json:"empresa_id"`
	ExpiraEm  *time.Time `json:"expira_em,omitempty"`
}

// Cache maps token hashes to entries. A miss is (nil, nil).
type Cache interface {
	Get(ctx context.Context, hash string) (*Entry, error)
	Set(ctx context.Context, hash string, e Entry, ttl time.Duration) error
	Delete(ctx context.Context, hash string) error
}

const cacheKeyPrefix = "apitoken:"

type RedisCache struct{ client *redis.Client }

func NewRedisCache(client *redis.Client) *RedisCache { return &RedisCache{client: client} }

func (c *RedisCache) Get(ctx context.Context, hash string) (*Entry, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+hash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RedisCache) Set(ctx context.Context, hash string, e Entry, ttl time.Duration) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKeyPrefix+hash, data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, hash string) error {
	return c.client.Del(ctx, cacheKeyPrefix+hash).Err()
}

type memEntry struct {
	e       Entry
	expires time.Time
}

// MemoryCache is the single-instance fallback.
type MemoryCache struct {
	mu  sync.Mutex
	m   map[string]memEntry
	now func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: map[string]memEntry{}, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, hash string) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	me, ok := c.m[hash]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(me.expires) {
		delete(c.m, hash)
		return nil, nil
	}
	e := me.e
	return &e, nil
}

func (c *MemoryCache) Set(_ context.Context, hash string, e Entry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[hash] = memEntry{e: e, expires: c.now().Add(ttl)}
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, hash)
	return nil
}
