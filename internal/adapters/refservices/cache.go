package refservices

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// existsCache - тривиальный кэш положительных проверок существования.
// Хранит только подтвержденные ID с коротким TTL; отрицательные и
// ошибочные ответы не кэшируются. TTL <= 0 выключает кэш.
type existsCache struct {
	mu  sync.Mutex
	ttl time.Duration
	ids map[uuid.UUID]time.Time
}

func newExistsCache(ttl time.Duration) *existsCache {
	return &existsCache{
		ttl: ttl,
		ids: make(map[uuid.UUID]time.Time),
	}
}

func (c *existsCache) has(id uuid.UUID) bool {
	if c.ttl <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt, ok := c.ids[id]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(c.ids, id)
		return false
	}
	return true
}

func (c *existsCache) put(id uuid.UUID) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[id] = time.Now().Add(c.ttl)
}
