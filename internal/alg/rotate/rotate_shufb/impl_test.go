package rotate_shufb_test

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
	"github.com/zeebo/u32x4/internal/alg/rotate/rotate_pure"
	"github.com/zeebo/u32x4/internal/alg/rotate/rotate_shufb"
	"github.com/zeebo/u32x4/internal/consts"
)

func TestRotate(t *testing.T) {
	if !consts.ShufbRunnable {
		t.SkipNow()
	}

	var v [4]uint32

	for i := 0; i < 1e5; i++ {
		var o1, o2 [4]uint32

		for i := range &v {
			v[i] = pcg.Uint32()
		}

		rotate_shufb.Rotate16(&o1, &v)
		rotate_pure.Any(&o2, &v, 16)
		assert.Equal(t, o1, o2)

		rotate_shufb.Rotate8(&o1, &v)
		rotate_pure.Any(&o2, &v, 8)
		assert.Equal(t, o1, o2)
	}
}

func TestRotateMatchesTables(t *testing.T) {
	if !consts.ShufbRunnable {
		t.SkipNow()
	}

	// lane i byte j holds 4i+j, so the output spells out the table
	v := [4]uint32{0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c}

	var o1, o2 [4]uint32

	rotate_shufb.Rotate16(&o1, &v)
	rotate_pure.ShuffleBytes(&o2, &v, &rotate_pure.Rot16Bytes)
	assert.Equal(t, o1, o2)
	assert.Equal(t, o1, [4]uint32{0x01000302, 0x05040706, 0x09080b0a, 0x0d0c0f0e})

	rotate_shufb.Rotate8(&o1, &v)
	rotate_pure.ShuffleBytes(&o2, &v, &rotate_pure.Rot8Bytes)
	assert.Equal(t, o1, o2)
	assert.Equal(t, o1, [4]uint32{0x00030201, 0x04070605, 0x080b0a09, 0x0c0f0e0d})
}

func TestRotateInPlace(t *testing.T) {
	if !consts.ShufbRunnable {
		t.SkipNow()
	}

	v := [4]uint32{0x00000001, 0x80000000, 0xFFFFFFFF, 0x0F0F0F0F}
	rotate_shufb.Rotate8(&v, &v)
	assert.Equal(t, v, [4]uint32{0x01000000, 0x00800000, 0xFFFFFFFF, 0x0F0F0F0F})
}

var sink uint32

func TestRotateNoAllocs(t *testing.T) {
	if !consts.ShufbRunnable {
		t.SkipNow()
	}

	v := [4]uint32{0x00000001, 0x80000000, 0xFFFFFFFF, 0x0F0F0F0F}

	allocs := testing.AllocsPerRun(100, func() {
		var out [4]uint32
		in := v
		rotate_shufb.Rotate16(&out, &in)
		rotate_shufb.Rotate8(&out, &out)
		sink += out[0]
	})
	assert.Equal(t, allocs, 0.0)
}

func BenchmarkRotate16(b *testing.B) {
	if !consts.ShufbRunnable {
		b.SkipNow()
	}

	var v, out [4]uint32

	b.SetBytes(16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rotate_shufb.Rotate16(&out, &v)
	}
}
