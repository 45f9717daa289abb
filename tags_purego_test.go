//go:build purego

package u32x4

func init() { builtPurego = true }
