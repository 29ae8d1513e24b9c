package benchmark

func (b *Benchmark[C]) execute(req Request, ds *Dataset) {
	switch req.Target {
	case TargetLookup:
		b.executeLookup(req.Iterations, ds.Keys)
	}
}

// executeLookup issues exactly iterations Search calls: as many full passes over
// keys as fit, then the leftover calls from the start of keys.
func (b *Benchmark[C]) executeLookup(iterations uint64, keys []Key) {
	if len(keys) == 0 {
		return
	}
	passes := iterations / uint64(len(keys))
	for i := uint64(0); i < passes; i++ {
		for _, k := range keys {
			clobber()
			v := b.container.Search(k)
			escape(v)
		}
	}

	leftover := iterations - passes*uint64(len(keys))
	for _, k := range keys[:leftover] {
		clobber()
		v := b.container.Search(k)
		escape(v)
	}
}
