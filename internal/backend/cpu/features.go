package cpu

import (
	"fmt"
	"runtime"
	"strings"

	syscpu "golang.org/x/sys/cpu"
)

// Features describes the instruction set extensions of the host CPU.
// It is informational: kernels are pure Go and rely on the compiler for
// vectorization.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      syscpu.X86.HasAVX2,
		HasAVX512:    syscpu.X86.HasAVX512,
		HasFMA:       syscpu.X86.HasFMA,
		HasSSE2:      syscpu.X86.HasSSE2,
		HasNEON:      syscpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// String lists the architecture, core count and detected extensions,
// e.g. "amd64 (16 cores): sse2 avx2 fma".
func (f Features) String() string {
	var ext []string
	for _, e := range []struct {
		name string
		ok   bool
	}{
		{"sse2", f.HasSSE2},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"fma", f.HasFMA},
		{"neon", f.HasNEON},
	} {
		if e.ok {
			ext = append(ext, e.name)
		}
	}
	if len(ext) == 0 {
		ext = append(ext, "generic")
	}
	return fmt.Sprintf("%s (%d cores): %s", f.Architecture, f.NumCPU, strings.Join(ext, " "))
}
