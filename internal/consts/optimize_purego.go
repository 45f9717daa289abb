//go:build purego
// +build purego

package consts

const Optimize = false
