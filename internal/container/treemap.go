package container

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/moguls753/kvbench/internal/benchmark"
)

/*
Red-Black tree keyed by the raw key bytes. String comparison is byte-wise
lexicographic, so tree order matches benchmark.Key.Compare.
*/

type TreeMap struct {
	tree *rbt.Tree
}

func NewTreeMap() *TreeMap {
	return &TreeMap{tree: rbt.NewWithStringComparator()}
}

func (t *TreeMap) Search(k benchmark.Key) benchmark.Value {
	v, found := t.tree.Get(string(k))
	if !found {
		return ""
	}
	return v.(benchmark.Value)
}

func (t *TreeMap) Insert(k benchmark.Key, v benchmark.Value) {
	t.tree.Put(string(k), v)
}

func (t *TreeMap) Name() string {
	return "treemap"
}

func (t *TreeMap) Len() int {
	return t.tree.Size()
}

// Keys returns the stored keys in ascending order
func (t *TreeMap) Keys() []benchmark.Key {
	keys := make([]benchmark.Key, 0, t.tree.Size())
	for _, k := range t.tree.Keys() {
		keys = append(keys, benchmark.Key(k.(string)))
	}
	return keys
}
