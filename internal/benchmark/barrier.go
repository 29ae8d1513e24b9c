package benchmark

import "sync/atomic"

var (
	fence atomic.Uint32

	// sink is only written from the single goroutine that runs a benchmark
	sink Value
)

// clobber issues a full memory fence. Atomic stores are sequentially consistent,
// so no load or store of the measured loop can be moved across it.
func clobber() {
	fence.Store(0)
}

// escape publishes v to a package-level variable. The compiler must keep every
// store to a global, so the Search that produced v is never dead code.
func escape(v Value) {
	sink = v
}
