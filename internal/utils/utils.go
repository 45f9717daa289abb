package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/u32x4/internal/consts"
)

// The byte and half views are always in little endian lane order, which is
// what the vector registers hold. On little endian hosts that is the memory
// layout too, so the views are plain reinterpretations.

func WordsToBytes(words *[4]uint32, bytes *[16]byte) {
	if consts.IsLittleEndian {
		*bytes = *(*[16]byte)(unsafe.Pointer(words))
		return
	}
	binary.LittleEndian.PutUint32(bytes[0*4:], words[0])
	binary.LittleEndian.PutUint32(bytes[1*4:], words[1])
	binary.LittleEndian.PutUint32(bytes[2*4:], words[2])
	binary.LittleEndian.PutUint32(bytes[3*4:], words[3])
}

func BytesToWords(bytes *[16]byte, words *[4]uint32) {
	if consts.IsLittleEndian {
		*words = *(*[4]uint32)(unsafe.Pointer(bytes))
		return
	}
	words[0] = binary.LittleEndian.Uint32(bytes[0*4:])
	words[1] = binary.LittleEndian.Uint32(bytes[1*4:])
	words[2] = binary.LittleEndian.Uint32(bytes[2*4:])
	words[3] = binary.LittleEndian.Uint32(bytes[3*4:])
}

func WordsToHalves(words *[4]uint32, halves *[8]uint16) {
	if consts.IsLittleEndian {
		*halves = *(*[8]uint16)(unsafe.Pointer(words))
		return
	}
	halves[0], halves[1] = uint16(words[0]), uint16(words[0]>>16)
	halves[2], halves[3] = uint16(words[1]), uint16(words[1]>>16)
	halves[4], halves[5] = uint16(words[2]), uint16(words[2]>>16)
	halves[6], halves[7] = uint16(words[3]), uint16(words[3]>>16)
}

func HalvesToWords(halves *[8]uint16, words *[4]uint32) {
	if consts.IsLittleEndian {
		*words = *(*[4]uint32)(unsafe.Pointer(halves))
		return
	}
	words[0] = uint32(halves[0]) | uint32(halves[1])<<16
	words[1] = uint32(halves[2]) | uint32(halves[3])<<16
	words[2] = uint32(halves[4]) | uint32(halves[5])<<16
	words[3] = uint32(halves[6]) | uint32(halves[7])<<16
}
