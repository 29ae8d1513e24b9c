package container

import (
	"github.com/cockroachdb/swiss"

	"github.com/moguls753/kvbench/internal/benchmark"
)

type SwissMap struct {
	m *swiss.Map[benchmark.Key, benchmark.Value]
}

func NewSwissMap() *SwissMap {
	return &SwissMap{m: swiss.New[benchmark.Key, benchmark.Value](8)}
}

func (s *SwissMap) Search(k benchmark.Key) benchmark.Value {
	v, _ := s.m.Get(k)
	return v
}

func (s *SwissMap) Insert(k benchmark.Key, v benchmark.Value) {
	s.m.Put(k, v)
}

func (s *SwissMap) Name() string {
	return "swiss"
}

func (s *SwissMap) Len() int {
	return s.m.Len()
}
