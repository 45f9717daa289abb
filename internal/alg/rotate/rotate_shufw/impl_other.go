//go:build (!amd64 && !arm64) || purego
// +build !amd64,!arm64 purego

package rotate_shufw

import "github.com/zeebo/u32x4/internal/alg/rotate/rotate_pure"

func Rotate16(out *[4]uint32, v *[4]uint32) {
	rotate_pure.ShuffleHalves(out, v, &rotate_pure.Rot16Halves)
}
