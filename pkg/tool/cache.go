package tool

import (
	"sync"
	"time"

	"github.com/siftstack/sift/pkg/config"
)

// aclEntry holds a cached permission decision with a timestamp for TTL
// expiration.
type aclEntry struct {
	allowed   bool
	fetchedAt time.Time
}

// PermissionCache is a thread-safe in-memory ACL cache keyed by
// (tenant, agent, tool). Expired entries are cleaned up lazily on
// Get(); no background goroutine. Explicit permission changes call
// Invalidate to drop an agent's entries before the TTL runs out.
type PermissionCache struct {
	mu      sync.RWMutex
	entries map[string]*aclEntry
	ttl     time.Duration
}

// NewPermissionCache creates a cache with the given TTL.
func NewPermissionCache(ttl time.Duration) *PermissionCache {
	return &PermissionCache{
		entries: make(map[string]*aclEntry),
		ttl:     ttl,
	}
}

func aclKey(tenantID, agentKey string, tool config.ToolName) string {
	return tenantID + "\x00" + agentKey + "\x00" + string(tool)
}

// Get returns the cached decision if present and not expired.
func (c *PermissionCache) Get(tenantID, agentKey string, tool config.ToolName) (allowed, ok bool) {
	key := aclKey(tenantID, agentKey, tool)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired. Re-check under write lock: a concurrent Set() may
		// have replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return false, false
	}

	return entry.allowed, true
}

// Set stores a decision with the current timestamp.
func (c *PermissionCache) Set(tenantID, agentKey string, tool config.ToolName, allowed bool) {
	c.mu.Lock()
	c.entries[aclKey(tenantID, agentKey, tool)] = &aclEntry{
		allowed:   allowed,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Invalidate drops every cached decision for an agent. Called when the
// agent definition (and with it the ACL) changes.
func (c *PermissionCache) Invalidate(tenantID, agentKey string) {
	prefix := tenantID + "\x00" + agentKey + "\x00"

	c.mu.Lock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
