//go:build amd64 || arm64

package simd

// Have256 reports whether the 256-bit-wide search used by Node32 is
// available on this build target.
//
// pkg/arena/art/simd decides this the same way: a GOARCH build tag, not
// runtime CPUID (no dependency anywhere in this corpus performs runtime
// feature detection). Node32's 32-wide functions in find.go are plain Go, not
// actual AVX2, so this is really "is it worth the extra node type's code
// size and bookkeeping on this architecture" rather than a strict
// hardware capability check.
const Have256 = true
