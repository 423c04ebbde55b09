//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// BufferSize represents different buffer size categories for pooling.
type BufferSize int

const (
	// SmallBuffer for tensors < 4KB.
	SmallBuffer BufferSize = iota
	// MediumBuffer for tensors 4KB-1MB.
	MediumBuffer
	// LargeBuffer for tensors > 1MB.
	LargeBuffer

	numCategories
)

const (
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB
	maxPoolSize     = 100         // Max buffers per category
)

// pooledBuffer wraps a GPU buffer with metadata.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// BufferPool recycles storage buffers between kernel launches.
// Buffers are bucketed by size category and matched on usage flags.
type BufferPool struct {
	device *wgpu.Device
	pools  [numCategories][]pooledBuffer
	mu     sync.Mutex

	totalAllocated uint64
	totalReleased  uint64
	poolHits       uint64
	poolMisses     uint64
}

// NewBufferPool creates a new buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{device: device}
}

// Acquire returns a pooled buffer of at least size bytes with the requested
// usage, or creates one.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := categorize(size)
	pool := p.pools[category]
	for i, pb := range pool {
		if pb.size >= size && pb.usage&usage == usage {
			p.pools[category] = append(pool[:i], pool[i+1:]...)
			p.poolHits++
			return pb.buffer
		}
	}

	p.poolMisses++
	p.totalAllocated++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// Release returns a buffer to the pool. A full category releases the buffer
// immediately.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.totalReleased++
	category := categorize(size)
	if len(p.pools[category]) >= maxPoolSize {
		buffer.Release()
		return
	}
	p.pools[category] = append(p.pools[category], pooledBuffer{buffer: buffer, size: size, usage: usage})
}

// Clear releases all pooled buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for category := range p.pools {
		for _, pb := range p.pools[category] {
			pb.buffer.Release()
		}
		p.pools[category] = nil
	}
}

// Stats returns statistics about buffer pool usage.
func (p *BufferPool) Stats() (allocated, released, hits, misses uint64, pooledCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pool := range p.pools {
		pooledCount += len(pool)
	}
	return p.totalAllocated, p.totalReleased, p.poolHits, p.poolMisses, pooledCount
}

// categorize determines the size category for a buffer.
func categorize(size uint64) BufferSize {
	switch {
	case size < smallThreshold:
		return SmallBuffer
	case size < mediumThreshold:
		return MediumBuffer
	default:
		return LargeBuffer
	}
}
