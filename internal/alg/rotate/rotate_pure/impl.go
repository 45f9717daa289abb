package rotate_pure

import (
	"github.com/zeebo/u32x4/internal/utils"
)

// Permutation tables over the little endian byte and half views of the four
// lanes. Entry i names the source element that lands at position i. They must
// not be modified.
var (
	// Rot16Bytes swaps the two 16-bit halves of each lane.
	Rot16Bytes = [16]byte{
		2, 3, 0, 1,
		6, 7, 4, 5,
		10, 11, 8, 9,
		14, 15, 12, 13,
	}

	// Rot8Bytes cycles the bytes of each lane down by one.
	Rot8Bytes = [16]byte{
		1, 2, 3, 0,
		5, 6, 7, 4,
		9, 10, 11, 8,
		13, 14, 15, 12,
	}

	// Rot16Halves swaps adjacent halves.
	Rot16Halves = [8]uint8{
		1, 0,
		3, 2,
		5, 4,
		7, 6,
	}
)

// Any rotates every lane of v right by n bits and stores the result in out.
// n must be at most 32. out and v may alias.
func Any(out, v *[4]uint32, n uint) {
	l := 32 - n
	out[0] = v[0]>>n | v[0]<<l
	out[1] = v[1]>>n | v[1]<<l
	out[2] = v[2]>>n | v[2]<<l
	out[3] = v[3]>>n | v[3]<<l
}

// ShuffleBytes permutes the sixteen bytes of v by tab like PSHUFB does for
// indexes below 16. Only the low four bits of each index are used.
func ShuffleBytes(out, v *[4]uint32, tab *[16]byte) {
	var in, res [16]byte
	utils.WordsToBytes(v, &in)
	for i, j := range tab {
		res[i] = in[j&15]
	}
	utils.BytesToWords(&res, out)
}

// ShuffleHalves permutes the eight 16-bit halves of v by tab. Only the low
// three bits of each index are used.
func ShuffleHalves(out, v *[4]uint32, tab *[8]uint8) {
	var in, res [8]uint16
	utils.WordsToHalves(v, &in)
	for i, j := range tab {
		res[i] = in[j&7]
	}
	utils.HalvesToWords(&res, out)
}
