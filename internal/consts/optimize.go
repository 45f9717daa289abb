//go:build !purego
// +build !purego

package consts

// Optimize enables the specialized rotate paths.
const Optimize = true
