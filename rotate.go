package u32x4

import (
	"math/bits"

	"github.com/zeebo/u32x4/internal/alg/rotate/rotate_shufb"
	"github.com/zeebo/u32x4/internal/alg/rotate/rotate_shufw"
	"github.com/zeebo/u32x4/internal/consts"
)

// Path16 and Path8 name the strategy compiled in for rotations by 16 and 8:
// "byte-shuffle", "half-shuffle" or "generic". They are fixed by the target
// (GOARCH, GOAMD64) and the purego build tag.
const (
	Path16 = consts.Path16
	Path8  = consts.Path8
)

// RotateRight rotates every lane of v right by n bits. Rotating by 0 or 32
// returns v unchanged. It panics if n is larger than 32.
//
// Amounts of 16 and 8 use a single shuffle instruction when the target has
// one. The result is the same on every target.
func RotateRight(v Vec, n uint) Vec {
	if n > 32 {
		panic("u32x4: rotation amount out of range")
	}
	return rotators[n](v)
}

// RotateLeft rotates every lane of v left by n bits, with the same rules as
// RotateRight.
func RotateLeft(v Vec, n uint) Vec {
	if n > 32 {
		panic("u32x4: rotation amount out of range")
	}
	return rotators[(32-n)&31](v)
}

// rotators has one entry per amount, each compiled with its amount as a
// constant. RotateRight stays small enough to inline into its callers.
var rotators = [33]func(Vec) Vec{
	0:  rotateRight0,
	1:  func(v Vec) Vec { return rotateRightAny(v, 1) },
	2:  func(v Vec) Vec { return rotateRightAny(v, 2) },
	3:  func(v Vec) Vec { return rotateRightAny(v, 3) },
	4:  func(v Vec) Vec { return rotateRightAny(v, 4) },
	5:  func(v Vec) Vec { return rotateRightAny(v, 5) },
	6:  func(v Vec) Vec { return rotateRightAny(v, 6) },
	7:  func(v Vec) Vec { return rotateRightAny(v, 7) },
	8:  kernel8(Path8),
	9:  func(v Vec) Vec { return rotateRightAny(v, 9) },
	10: func(v Vec) Vec { return rotateRightAny(v, 10) },
	11: func(v Vec) Vec { return rotateRightAny(v, 11) },
	12: func(v Vec) Vec { return rotateRightAny(v, 12) },
	13: func(v Vec) Vec { return rotateRightAny(v, 13) },
	14: func(v Vec) Vec { return rotateRightAny(v, 14) },
	15: func(v Vec) Vec { return rotateRightAny(v, 15) },
	16: kernel16(Path16),
	17: func(v Vec) Vec { return rotateRightAny(v, 17) },
	18: func(v Vec) Vec { return rotateRightAny(v, 18) },
	19: func(v Vec) Vec { return rotateRightAny(v, 19) },
	20: func(v Vec) Vec { return rotateRightAny(v, 20) },
	21: func(v Vec) Vec { return rotateRightAny(v, 21) },
	22: func(v Vec) Vec { return rotateRightAny(v, 22) },
	23: func(v Vec) Vec { return rotateRightAny(v, 23) },
	24: func(v Vec) Vec { return rotateRightAny(v, 24) },
	25: func(v Vec) Vec { return rotateRightAny(v, 25) },
	26: func(v Vec) Vec { return rotateRightAny(v, 26) },
	27: func(v Vec) Vec { return rotateRightAny(v, 27) },
	28: func(v Vec) Vec { return rotateRightAny(v, 28) },
	29: func(v Vec) Vec { return rotateRightAny(v, 29) },
	30: func(v Vec) Vec { return rotateRightAny(v, 30) },
	31: func(v Vec) Vec { return rotateRightAny(v, 31) },
	32: rotateRight0,
}

// kernel16 and kernel8 return the implementation named by a path constant.

func kernel16(path string) func(Vec) Vec {
	switch path {
	case consts.PathByteShuffle:
		return rotateRight16Bytes
	case consts.PathHalfShuffle:
		return rotateRight16Halves
	}
	return func(v Vec) Vec { return rotateRightAny(v, 16) }
}

func kernel8(path string) func(Vec) Vec {
	if path == consts.PathByteShuffle {
		return rotateRight8Bytes
	}
	return func(v Vec) Vec { return rotateRightAny(v, 8) }
}

func rotateRight0(v Vec) Vec { return v }

// rotateRightAny is the generic formula. With a constant n every lane
// compiles to one rotate instruction.
func rotateRightAny(v Vec, n uint) Vec {
	k := -int(n)
	return Vec{
		bits.RotateLeft32(v[0], k),
		bits.RotateLeft32(v[1], k),
		bits.RotateLeft32(v[2], k),
		bits.RotateLeft32(v[3], k),
	}
}

func rotateRight16Bytes(v Vec) (out Vec) {
	rotate_shufb.Rotate16(out.words(), v.words())
	return out
}

func rotateRight16Halves(v Vec) (out Vec) {
	rotate_shufw.Rotate16(out.words(), v.words())
	return out
}

func rotateRight8Bytes(v Vec) (out Vec) {
	rotate_shufb.Rotate8(out.words(), v.words())
	return out
}
