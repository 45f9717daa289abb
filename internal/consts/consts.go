package consts

import (
	"unsafe"
)

// TODO: maybe this would be better if it was a const. then the compiler could
// do dead code elimination in utils.
var IsLittleEndian = *(*uint32)(unsafe.Pointer(&[4]byte{0, 0, 0, 1})) != 1

// Names of the strategies the dispatcher can compile in for a given amount.
const (
	PathByteShuffle = "byte-shuffle"
	PathHalfShuffle = "half-shuffle"
	PathGeneric     = "generic"
)
