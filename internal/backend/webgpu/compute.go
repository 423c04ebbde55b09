//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/born-ml/numerics/internal/parallel"
	"github.com/go-webgpu/webgpu/wgpu"
)

// maxWorkgroupsPerDimension is the WebGPU default limit per dispatch axis.
const maxWorkgroupsPerDimension = 65535

// uniformSize is the size of the Params uniform.
const uniformSize = 32

// Bit patterns of +Inf and the quiet NaN as float32.
const (
	infBits = 0x7f800000
	nanBits = 0x7fc00000
)

// params mirrors the WGSL Params struct.
type params struct {
	size       uint32
	iterations uint32
	tolerance  float32
	factor     float32
	c          [2]float32
}

// encode lays params out as WGSL expects: 4-byte scalars, the vec2 at
// offset 16, then the infinity and NaN bit patterns.
func (p params) encode() []byte {
	buf := make([]byte, uniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], p.size)
	binary.LittleEndian.PutUint32(buf[4:8], p.iterations)
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(p.tolerance))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(p.factor))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(p.c[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(p.c[1]))
	binary.LittleEndian.PutUint32(buf[24:28], infBits)
	binary.LittleEndian.PutUint32(buf[28:32], nanBits)
	return buf
}

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Backend's shaders map.
func (b *Backend) compileShader(k kernel) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[k.name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(k.source())

	b.mu.Lock()
	b.shaders[k.name] = shader
	b.mu.Unlock()
	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(k kernel) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[k.name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	// Auto layout (nil) derives the bind group layout from the shader.
	pipeline := b.device.CreateComputePipelineSimple(nil, b.compileShader(k), "main")

	b.mu.Lock()
	b.pipelines[k.name] = pipeline
	b.mu.Unlock()
	return pipeline
}

// createBuffer creates a GPU buffer initialized with data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()
	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	result := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(result, unsafe.Slice((*byte)(mappedPtr), size))
	stagingBuffer.Unmap()
	return result, nil
}

// dispatchSize splits the workgroups covering n elements across the x and
// y axes so neither exceeds the per-dimension limit.
func dispatchSize(n int) (x, y uint32) {
	//nolint:gosec // G115: n is a non-negative element count.
	groups := parallel.ShiftDownRoundingUp(uint(n), workgroupShift)
	if groups <= maxWorkgroupsPerDimension {
		return uint32(groups), 1 //nolint:gosec // G115: bounded above.
	}
	rows := (groups + maxWorkgroupsPerDimension - 1) / maxWorkgroupsPerDimension
	return maxWorkgroupsPerDimension, uint32(rows) //nolint:gosec // G115: rows fits u32.
}

// run executes kernel k over n elements. inputs are uploaded in binding
// order, followed by one output buffer per entry of outputSizes and the
// params uniform. It returns the output buffers' contents.
func (b *Backend) run(k kernel, n int, inputs [][]byte, outputSizes []uint64, p params) ([][]byte, error) {
	pipeline := b.getOrCreatePipeline(k)

	//nolint:gosec // G115: n is a non-negative element count.
	p.size = uint32(n)
	entries := make([]wgpu.BindGroupEntry, 0, len(inputs)+len(outputSizes)+1)
	binding := uint32(0)

	for _, data := range inputs {
		buffer := b.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
		defer buffer.Release()
		entries = append(entries, wgpu.BufferBindingEntry(binding, buffer, 0, uint64(len(data))))
		binding++
	}

	const outputUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst
	outputs := make([]*wgpu.Buffer, len(outputSizes))
	for i, size := range outputSizes {
		outputs[i] = b.bufferPool.Acquire(size, outputUsage)
		defer b.bufferPool.Release(outputs[i], size, outputUsage)
		entries = append(entries, wgpu.BufferBindingEntry(binding, outputs[i], 0, size))
		binding++
	}

	uniform := b.createBuffer(p.encode(), wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	defer uniform.Release()
	entries = append(entries, wgpu.BufferBindingEntry(binding, uniform, 0, uniformSize))

	bindGroup := b.device.CreateBindGroupSimple(pipeline.GetBindGroupLayout(0), entries)
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	x, y := dispatchSize(n)
	computePass.DispatchWorkgroups(x, y, 1)
	computePass.End()
	b.queue.Submit(encoder.Finish(nil))

	results := make([][]byte, len(outputs))
	for i, buffer := range outputs {
		data, err := b.readBuffer(buffer, outputSizes[i])
		if err != nil {
			return nil, fmt.Errorf("webgpu: %s: %w", k.name, err)
		}
		results[i] = data
	}
	return results, nil
}
