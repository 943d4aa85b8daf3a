//go:build !amd64 && !arm64

package simd

// Have256 is false on architectures where Node32 gains nothing over
// Node38/Node48. See have256_amd64.go.
const Have256 = false
