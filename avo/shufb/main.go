package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

func main() {
	ConstraintExpr("amd64,!purego")

	rot16Mem := GLOBL("rot16_shuf", RODATA|NOPTR)
	for n, v := range []U8{
		0x02, 0x03, 0x00, 0x01, 0x06, 0x07, 0x04, 0x05,
		0x0A, 0x0B, 0x08, 0x09, 0x0E, 0x0F, 0x0C, 0x0D,
	} {
		DATA(n, v)
	}

	rot8Mem := GLOBL("rot8_shuf", RODATA|NOPTR)
	for n, v := range []U8{
		0x01, 0x02, 0x03, 0x00, 0x05, 0x06, 0x07, 0x04,
		0x09, 0x0A, 0x0B, 0x08, 0x0D, 0x0E, 0x0F, 0x0C,
	} {
		DATA(n, v)
	}

	TEXT("Rotate16", NOSPLIT, `func(out *[4]uint32, v *[4]uint32)`)
	Pragma("noescape")
	Doc("Rotate16 rotates each lane of v right by 16 bits into out.")
	shuffle(rot16Mem)

	TEXT("Rotate8", NOSPLIT, `func(out *[4]uint32, v *[4]uint32)`)
	Pragma("noescape")
	Doc("Rotate8 rotates each lane of v right by 8 bits into out.")
	shuffle(rot8Mem)

	Generate()
}

// shuffle loads the table into a register first: the legacy encoding of
// PSHUFB faults on an unaligned memory operand.
func shuffle(tab Mem) {
	var (
		out = Mem{Base: Load(Param("out"), GP64())}
		v   = Mem{Base: Load(Param("v"), GP64())}
	)

	x, t := XMM(), XMM()
	MOVOU(v, x)
	MOVOU(tab, t)
	PSHUFB(t, x)
	MOVOU(x, out)

	RET()
}
