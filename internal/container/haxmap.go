package container

import (
	"github.com/alphadose/haxmap"

	"github.com/moguls753/kvbench/internal/benchmark"
)

type HaxMap struct {
	m *haxmap.Map[string, benchmark.Value]
}

func NewHaxMap() *HaxMap {
	return &HaxMap{m: haxmap.New[string, benchmark.Value]()}
}

func (h *HaxMap) Search(k benchmark.Key) benchmark.Value {
	v, _ := h.m.Get(string(k))
	return v
}

func (h *HaxMap) Insert(k benchmark.Key, v benchmark.Value) {
	h.m.Set(string(k), v)
}

func (h *HaxMap) Name() string {
	return "haxmap"
}

func (h *HaxMap) Len() int {
	return int(h.m.Len())
}
