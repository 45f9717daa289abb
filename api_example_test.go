package u32x4_test

import (
	"fmt"

	"github.com/zeebo/u32x4"
)

func ExampleRotateRight() {
	v := u32x4.New(0x00000001, 0x80000000, 0xFFFFFFFF, 0x0F0F0F0F)

	fmt.Printf("%08x\n", u32x4.RotateRight(v, 8))
	fmt.Printf("%08x\n", u32x4.RotateRight(v, 16))
	// Output:
	// [01000000 00800000 ffffffff 0f0f0f0f]
	// [00010000 00008000 ffffffff 0f0f0f0f]
}

// g is the BLAKE2s/BLAKE3 mixing function applied to four columns at once.
func g(a, b, c, d, mx, my u32x4.Vec) (u32x4.Vec, u32x4.Vec, u32x4.Vec, u32x4.Vec) {
	a = a.Add(b).Add(mx)
	d = u32x4.RotateRight(d.Xor(a), 16)
	c = c.Add(d)
	b = u32x4.RotateRight(b.Xor(c), 12)
	a = a.Add(b).Add(my)
	d = u32x4.RotateRight(d.Xor(a), 8)
	c = c.Add(d)
	b = u32x4.RotateRight(b.Xor(c), 7)
	return a, b, c, d
}

func ExampleRotateRight_mixing() {
	a := u32x4.New(0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A)
	b := u32x4.New(0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19)
	c := u32x4.New(0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A)
	d := u32x4.New(0, 0, 64, 0b1011)

	a, b, c, d = g(a, b, c, d, u32x4.Splat(0x61626364), u32x4.Splat(0))

	fmt.Printf("%08x\n%08x\n%08x\n%08x\n", a, b, c, d)
	// Output:
	// [266011ef a55a67f5 541c5bb7 0fdc3480]
	// [972bd6b2 493a6cf7 37b2a54b d4e6ff6d]
	// [9c0e2cee 70bc9624 4f958ead de36b823]
	// [95ba2a0d 3adf2fd0 e264dde6 132a6056]
}
