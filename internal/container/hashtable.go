package container

import (
	"unsafe"

	"github.com/spaolacci/murmur3"

	"github.com/moguls753/kvbench/internal/benchmark"
)

// Hasher maps a key to a bucket hash
type Hasher func(k benchmark.Key) uint64

// DJB is Bernstein's hash over the signed key bytes, truncated to 32 bits
func DJB(k benchmark.Key) uint64 {
	h := uint32(5381)
	for i := 0; i < len(k); i++ {
		h = (h << 5) + h + uint32(int32(int8(k[i])))
	}
	return uint64(h)
}

func Murmur3(k benchmark.Key) uint64 {
	return murmur3.Sum64(unsafe.Slice(unsafe.StringData(string(k)), len(k)))
}

const (
	initialBuckets = 8
	maxLoadFactor  = 1
)

type bucketEntry struct {
	key benchmark.Key
	val benchmark.Value
}

// HashTable is a separately chained hash table with a power-of-two bucket count
// that doubles once it holds more than one entry per bucket.
type HashTable struct {
	name    string
	hash    Hasher
	buckets [][]bucketEntry
	size    int
}

func NewHashTable(name string, hash Hasher) *HashTable {
	return &HashTable{
		name:    name,
		hash:    hash,
		buckets: make([][]bucketEntry, initialBuckets),
	}
}

func (t *HashTable) bucket(k benchmark.Key) int {
	return int(t.hash(k) & uint64(len(t.buckets)-1))
}

func (t *HashTable) Search(k benchmark.Key) benchmark.Value {
	b := t.buckets[t.bucket(k)]
	for i := range b {
		if b[i].key == k {
			return b[i].val
		}
	}
	return ""
}

func (t *HashTable) Insert(k benchmark.Key, v benchmark.Value) {
	idx := t.bucket(k)
	b := t.buckets[idx]
	for i := range b {
		if b[i].key == k {
			b[i].val = v
			return
		}
	}
	t.buckets[idx] = append(b, bucketEntry{key: k, val: v})
	t.size++

	if t.size > len(t.buckets)*maxLoadFactor {
		t.grow()
	}
}

func (t *HashTable) grow() {
	old := t.buckets
	t.buckets = make([][]bucketEntry, len(old)*2)
	for _, b := range old {
		for _, e := range b {
			idx := t.bucket(e.key)
			t.buckets[idx] = append(t.buckets[idx], e)
		}
	}
}

func (t *HashTable) Name() string {
	return t.name
}

func (t *HashTable) Len() int {
	return t.size
}

func (t *HashTable) Buckets() int {
	return len(t.buckets)
}
