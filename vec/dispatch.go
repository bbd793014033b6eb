package vec

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the vector capability selected for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD capability; the emulation width is
	// still 16 bytes so lane grouping stays consistent.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates x86-64 SSE2 (128-bit, the amd64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates x86-64 AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates x86-64 AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the capability detected for this runtime.
// Set once by init() in dispatch_*.go files and never changed afterwards:
// the selection affects only how columns are grouped, so callers may cache
// lane counts freely.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
var currentWidth int

// CurrentLevel returns the vector capability being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the MATVEC_NO_SIMD environment variable is set.
// When set, the scalar-mode width is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("MATVEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes for type T at the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - BFloat16/Float16: 32/2 = 16 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
