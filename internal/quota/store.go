// internal/quota/store.go
package quota

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps counters in Redis so multiple instances share one view of
// usage. INCR is atomic; the TTL is set only when the key is first created.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.client.Expire(ctx, key, ttl)
	}
	return int(count), nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MemoryStore is the single-instance fallback used when Redis is not
// configured, and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]int)}
}

func (s *MemoryStore) Increment(_ context.Context, key string, _ time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key], nil
}
