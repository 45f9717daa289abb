//go:build amd64.v2

package u32x4

func init() { builtAMD64v2 = true }
