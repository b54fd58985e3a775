package mem

import (
	"sync/atomic"

	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

// active caches the kernel set selected for this process. The first call to
// kernels() resolves it from the registry using the detected CPU features;
// after that the hot path is one atomic load and an indirect call.
var active atomic.Pointer[registry.OpEntry]

func kernels() *registry.OpEntry {
	if e := active.Load(); e != nil {
		return e
	}
	e := registry.Global.Lookup(cpu.DetectFeatures())
	if e == nil {
		panic("mem: no kernel set registered")
	}
	active.Store(e)
	return e
}

// resetKernels drops the cached selection so the next call re-runs the
// lookup. Used by tests together with cpu.SetForcedFeatures.
func resetKernels() {
	active.Store(nil)
}
