package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siftstack/sift/pkg/config"
)

func TestPermissionCache_SetAndGet(t *testing.T) {
	cache := NewPermissionCache(1 * time.Minute)

	cache.Set("tenant-1", "geo", config.ToolGeocode, true)
	cache.Set("tenant-1", "geo", config.ToolCustomHTTP, false)

	allowed, ok := cache.Get("tenant-1", "geo", config.ToolGeocode)
	assert.True(t, ok)
	assert.True(t, allowed)

	allowed, ok = cache.Get("tenant-1", "geo", config.ToolCustomHTTP)
	assert.True(t, ok)
	assert.False(t, allowed)
}

func TestPermissionCache_Miss(t *testing.T) {
	cache := NewPermissionCache(1 * time.Minute)

	_, ok := cache.Get("tenant-1", "geo", config.ToolLLM)
	assert.False(t, ok)
}

func TestPermissionCache_TTLExpiry(t *testing.T) {
	cache := NewPermissionCache(50 * time.Millisecond)

	cache.Set("tenant-1", "geo", config.ToolGeocode, true)

	_, ok := cache.Get("tenant-1", "geo", config.ToolGeocode)
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get("tenant-1", "geo", config.ToolGeocode)
	assert.False(t, ok)
}

func TestPermissionCache_TenantsAreIsolated(t *testing.T) {
	cache := NewPermissionCache(1 * time.Minute)

	cache.Set("tenant-1", "geo", config.ToolGeocode, true)

	_, ok := cache.Get("tenant-2", "geo", config.ToolGeocode)
	assert.False(t, ok)
}

func TestPermissionCache_Invalidate(t *testing.T) {
	cache := NewPermissionCache(1 * time.Minute)

	cache.Set("tenant-1", "geo", config.ToolGeocode, true)
	cache.Set("tenant-1", "geo", config.ToolLLM, true)
	cache.Set("tenant-1", "entity", config.ToolLLM, true)
	cache.Set("tenant-2", "geo", config.ToolLLM, true)

	cache.Invalidate("tenant-1", "geo")

	_, ok := cache.Get("tenant-1", "geo", config.ToolGeocode)
	assert.False(t, ok)
	_, ok = cache.Get("tenant-1", "geo", config.ToolLLM)
	assert.False(t, ok)

	// Other agents and tenants keep their entries.
	_, ok = cache.Get("tenant-1", "entity", config.ToolLLM)
	assert.True(t, ok)
	_, ok = cache.Get("tenant-2", "geo", config.ToolLLM)
	assert.True(t, ok)
}
