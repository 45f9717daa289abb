//go:build !amd64 || purego
// +build !amd64 purego

package rotate_shufb

import "github.com/zeebo/u32x4/internal/alg/rotate/rotate_pure"

func Rotate16(out *[4]uint32, v *[4]uint32) {
	rotate_pure.ShuffleBytes(out, v, &rotate_pure.Rot16Bytes)
}

func Rotate8(out *[4]uint32, v *[4]uint32) {
	rotate_pure.ShuffleBytes(out, v, &rotate_pure.Rot8Bytes)
}
