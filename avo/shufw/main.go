package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

func main() {
	ConstraintExpr("amd64,!purego")

	TEXT("Rotate16", NOSPLIT, `func(out *[4]uint32, v *[4]uint32)`)
	Pragma("noescape")
	Doc("Rotate16 rotates each lane of v right by 16 bits into out.")

	var (
		out = Mem{Base: Load(Param("out"), GP64())}
		v   = Mem{Base: Load(Param("v"), GP64())}
	)

	x := XMM()
	MOVOU(v, x)
	PSHUFLW(pack(2, 3, 0, 1), x, x) // swap words of the low two lanes
	PSHUFHW(pack(2, 3, 0, 1), x, x) // and of the high two
	MOVOU(x, out)

	RET()

	Generate()
}

func pack(a, b, c, d int) U8 {
	return U8(a<<6 | b<<4 | c<<2 | d)
}
