// Package u32x4 provides a four lane vector of uint32 and the constant
// distance lane rotation used by ARX mixing rounds.
package u32x4

import (
	"github.com/zeebo/u32x4/internal/utils"
)

// Vec is four independent uint32 lanes. Operations return new values and
// never modify their receiver.
type Vec [4]uint32

// Bytes is a Vec viewed as sixteen bytes. Byte 4*i+j is byte j, least
// significant first, of lane i.
type Bytes [16]byte

// Halves is a Vec viewed as eight 16-bit lanes. Half 2*i is the low half of
// lane i and half 2*i+1 the high half.
type Halves [8]uint16

// New returns the vector with lanes a, b, c and d.
func New(a, b, c, d uint32) Vec { return Vec{a, b, c, d} }

// Splat returns the vector with every lane set to x.
func Splat(x uint32) Vec { return Vec{x, x, x, x} }

// Shr shifts every lane right by n bits. Shifting by 32 or more gives zero.
func (v Vec) Shr(n uint) Vec {
	return Vec{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

// Shl shifts every lane left by n bits. Shifting by 32 or more gives zero.
func (v Vec) Shl(n uint) Vec {
	return Vec{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

// Or combines v and w lane-wise with bitwise OR.
func (v Vec) Or(w Vec) Vec {
	return Vec{v[0] | w[0], v[1] | w[1], v[2] | w[2], v[3] | w[3]}
}

// Xor combines v and w lane-wise with bitwise XOR.
func (v Vec) Xor(w Vec) Vec {
	return Vec{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

// Add adds lane-wise, wrapping modulo 2^32.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Bytes reinterprets the lanes as bytes. No value changes, only the view.
func (v Vec) Bytes() (b Bytes) {
	utils.WordsToBytes(v.words(), (*[16]byte)(&b))
	return b
}

// FromBytes is the inverse of Vec.Bytes.
func FromBytes(b Bytes) (v Vec) {
	utils.BytesToWords((*[16]byte)(&b), v.words())
	return v
}

// Halves reinterprets the lanes as 16-bit halves.
func (v Vec) Halves() (h Halves) {
	utils.WordsToHalves(v.words(), (*[8]uint16)(&h))
	return h
}

// FromHalves is the inverse of Vec.Halves.
func FromHalves(h Halves) (v Vec) {
	utils.HalvesToWords((*[8]uint16)(&h), v.words())
	return v
}

func (v *Vec) words() *[4]uint32 { return (*[4]uint32)(v) }
