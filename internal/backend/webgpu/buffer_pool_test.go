//go:build windows

package webgpu

import (
	"testing"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, SmallBuffer, categorize(1024))
	assert.Equal(t, MediumBuffer, categorize(smallThreshold))
	assert.Equal(t, LargeBuffer, categorize(mediumThreshold))
}

func TestBufferPoolReuse(t *testing.T) {
	backend := newBackend(t)
	pool := backend.bufferPool
	usage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc

	first := pool.Acquire(1024, usage)
	pool.Release(first, 1024, usage)
	second := pool.Acquire(512, usage)

	allocated, released, hits, misses, pooled := pool.Stats()
	assert.Equal(t, uint64(1), allocated)
	assert.Equal(t, uint64(1), released)
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 0, pooled)
	assert.Same(t, first, second)

	pool.Release(second, 1024, usage)
	pool.Clear()
	_, _, _, _, pooled = pool.Stats()
	assert.Equal(t, 0, pooled)
}
