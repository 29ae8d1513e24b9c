package benchmark

// Dataset is the ordered key sequence probed by the executor. Every key is unique;
// Inserted of them are present in the container and Misses never were.
type Dataset struct {
	Keys     []Key
	Inserted int
	Misses   int
}

func (d *Dataset) Len() int {
	return len(d.Keys)
}

// ClampElements caps elements at the number of distinct keys and distinct values
// the shape can represent.
func ClampElements(elements int, shape Shape) int {
	for _, size := range []int{shape.ValSize, shape.KeySize} {
		bits := size * 8
		if bits >= 62 {
			continue
		}
		if space := 1 << bits; elements > space {
			elements = space
		}
	}
	return elements
}

func (b *Benchmark[C]) prepare(req Request) *Dataset {
	switch req.Target {
	case TargetLookup:
		return b.prepareLookup(req)
	default:
		return &Dataset{}
	}
}

func (b *Benchmark[C]) prepareLookup(req Request) *Dataset {
	elements := ClampElements(req.Elements, b.gen.Shape())

	misses := 0
	if req.Type == ShuffledWithMisses {
		misses = int(float64(elements) * req.MissFraction)
	}
	inserted := elements - misses

	ds := &Dataset{
		Keys:     make([]Key, 0, elements),
		Inserted: inserted,
		Misses:   misses,
	}
	seen := make(map[Key]struct{}, elements)

	for i := 0; i < inserted; i++ {
		k, v := b.uniquePair(seen)
		ds.Keys = append(ds.Keys, k)
		b.container.Insert(k, v)
	}
	for i := 0; i < misses; i++ {
		k, _ := b.uniquePair(seen)
		ds.Keys = append(ds.Keys, k)
	}

	if req.Type.shuffles() {
		b.shuffle(ds.Keys)
	}
	return ds
}

// uniquePair rejection-samples until the key has not been seen in this dataset.
// It never returns if the key space is exhausted; ClampElements prevents that.
func (b *Benchmark[C]) uniquePair(seen map[Key]struct{}) (Key, Value) {
	for {
		k, v := b.gen.GeneratePair()
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			return k, v
		}
	}
}

// shuffle is a single Fisher-Yates pass driven by the generator's modulo draw
func (b *Benchmark[C]) shuffle(keys []Key) {
	for i := 1; i < len(keys); i++ {
		j := b.gen.GenerateUniform(uint64(i + 1))
		keys[i], keys[j] = keys[j], keys[i]
	}
}
