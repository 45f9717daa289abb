//go:build arm64 && !purego
// +build arm64,!purego

package rotate_shufw

// Rotate16 rotates each lane of v right by 16 bits into out.
//
//go:noescape
func Rotate16(out *[4]uint32, v *[4]uint32)
