// Package parallel provides data-parallel execution helpers for element-wise
// complex kernels.
//
// Work is split into blocks the way a GPU dispatch is: ThreadsPerBlock
// elements per block and BlockCount blocks per launch. ForRange hands each
// goroutine a whole number of blocks, and the WebGPU backend sizes its
// dispatch with the same ShiftDownRoundingUp arithmetic.
package parallel

import (
	"runtime"
	"sync"
)

// blockShift is the base-2 logarithm of ThreadsPerBlock.
const blockShift = 10

// ThreadsPerBlock is the number of elements handled by one block of work.
const ThreadsPerBlock = 1 << blockShift

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// ShiftDownRoundingUp returns ceil(x / 2^shift) for non-negative x.
func ShiftDownRoundingUp(x, shift uint) uint {
	rounded := x >> shift
	if x&(1<<shift-1) != 0 {
		rounded++
	}
	return rounded
}

// BlockCount returns the number of blocks of ThreadsPerBlock elements needed
// to cover n elements.
func BlockCount(n int) int {
	if n <= 0 {
		return 0
	}
	return int(ShiftDownRoundingUp(uint(n), blockShift)) //nolint:gosec // G115: n is positive.
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for
// each chunk, concurrently when parallelism is enabled. Chunks never
// overlap and together cover the whole range. Every chunk but the last
// starts and ends on a ThreadsPerBlock boundary and holds at least
// MinChunkSize elements.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	blocks := BlockCount(n)
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize || blocks == 1 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	blocksPerChunk := max((blocks+cfg.NumWorkers-1)/cfg.NumWorkers, BlockCount(cfg.MinChunkSize), 1)
	chunkSize := blocksPerChunk * ThreadsPerBlock

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForRows is For over a rows×cols grid, calling f(row, col) for every cell.
// Used for two-dimensional sampling such as fractal planes.
func ForRows(rows, cols int, f func(row, col int), cfg Config) {
	For(rows*cols, func(k int) {
		f(k/cols, k%cols)
	}, cfg)
}
