//go:build amd64 && amd64.v2 && !purego
// +build amd64,amd64.v2,!purego

package consts

// x86-64-v2 guarantees SSSE3, so PSHUFB is always there.
const (
	HasByteShuffle = true
	HasHalfShuffle = true

	ShufbAsm = true
	ShufwAsm = true

	Path16 = PathByteShuffle
	Path8  = PathByteShuffle
)
