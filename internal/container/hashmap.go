package container

import "github.com/moguls753/kvbench/internal/benchmark"

// HashMap is the Go builtin map. A miss yields the map's zero Value.
type HashMap struct {
	m map[benchmark.Key]benchmark.Value
}

func NewHashMap() *HashMap {
	return &HashMap{m: make(map[benchmark.Key]benchmark.Value, 8)}
}

func (h *HashMap) Search(k benchmark.Key) benchmark.Value {
	return h.m[k]
}

func (h *HashMap) Insert(k benchmark.Key, v benchmark.Value) {
	h.m[k] = v
}

func (h *HashMap) Name() string {
	return "hashmap"
}

func (h *HashMap) Len() int {
	return len(h.m)
}
