//go:build amd64 && !amd64.v2 && !purego
// +build amd64,!amd64.v2,!purego

package consts

// Baseline amd64 only promises SSE2: PSHUFLW and PSHUFHW, but no PSHUFB.
const (
	HasByteShuffle = false
	HasHalfShuffle = true

	ShufbAsm = true
	ShufwAsm = true

	Path16 = PathHalfShuffle
	Path8  = PathGeneric
)
