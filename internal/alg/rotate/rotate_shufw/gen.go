// Package rotate_shufw rotates lanes by 16 with a 16-bit shuffle: PSHUFLW and
// PSHUFHW on amd64, VREV32 on arm64.
package rotate_shufw

//go:generate sh -c "cd ../../../../avo/shufw && go run main.go -out ../../internal/alg/rotate/rotate_shufw/impl_amd64.s -stubs ../../internal/alg/rotate/rotate_shufw/impl_amd64.go -pkg rotate_shufw"
