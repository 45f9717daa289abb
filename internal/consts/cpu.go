package consts

import (
	"golang.org/x/sys/cpu"
)

// These describe the executing CPU. They never choose a rotate path; that is
// fixed when the package is compiled. They only say whether a compiled kernel
// is safe to call, so tests can skip the ones that are not.
var (
	CPUHasSSE2  = cpu.X86.HasSSE2
	CPUHasSSSE3 = cpu.X86.HasSSSE3
	CPUHasASIMD = cpu.ARM64.HasASIMD

	ShufbRunnable = !ShufbAsm || CPUHasSSSE3
	ShufwRunnable = !ShufwAsm || CPUHasSSE2 || CPUHasASIMD
)
