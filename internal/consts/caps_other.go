//go:build (!amd64 && !arm64) || purego
// +build !amd64,!arm64 purego

package consts

const (
	HasByteShuffle = false
	HasHalfShuffle = false

	ShufbAsm = false
	ShufwAsm = false

	Path16 = PathGeneric
	Path8  = PathGeneric
)
