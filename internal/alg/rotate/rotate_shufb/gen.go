// Package rotate_shufb rotates lanes with a single byte shuffle (PSHUFB).
package rotate_shufb

//go:generate sh -c "cd ../../../../avo/shufb && go run main.go -out ../../internal/alg/rotate/rotate_shufb/impl_amd64.s -stubs ../../internal/alg/rotate/rotate_shufb/impl_amd64.go -pkg rotate_shufb"
