//go:build arm64 && !purego
// +build arm64,!purego

package consts

// NEON has VREV32 for the 16-bit halves.
const (
	HasByteShuffle = false
	HasHalfShuffle = true

	ShufbAsm = false
	ShufwAsm = true

	Path16 = PathHalfShuffle
	Path8  = PathGeneric
)
