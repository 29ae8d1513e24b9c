// Package container holds the adapters that put real key/value containers behind
// benchmark.Container, and the registry the sweep selects them from.
package container

import (
	"errors"
	"fmt"
	"sort"

	"github.com/moguls753/kvbench/internal/benchmark"
)

var ErrUnknownContainer = errors.New("unknown container")

// Entry is one registered adapter. Each entry binds a benchmark.Benchmark to its
// concrete container type, so lookups are not routed through an interface value.
type Entry struct {
	Name        string
	Description string

	newContainer func(shape benchmark.Shape) benchmark.Container
	run          func(gen *benchmark.Generator, req benchmark.Request) (*benchmark.Result, error)
}

// Run benchmarks a fresh container built for the generator's shape
func (e Entry) Run(gen *benchmark.Generator, req benchmark.Request) (*benchmark.Result, error) {
	return e.run(gen, req)
}

// New returns an empty container of this kind
func (e Entry) New(shape benchmark.Shape) benchmark.Container {
	return e.newContainer(shape)
}

func newEntry[C benchmark.Container](name, description string, newC func(shape benchmark.Shape) C) Entry {
	return Entry{
		Name:        name,
		Description: description,
		newContainer: func(shape benchmark.Shape) benchmark.Container {
			return newC(shape)
		},
		run: func(gen *benchmark.Generator, req benchmark.Request) (*benchmark.Result, error) {
			return benchmark.New(newC(gen.Shape()), gen).Run(req)
		},
	}
}

var registry = map[string]Entry{}

func register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic(fmt.Sprintf("container %q registered twice", e.Name))
	}
	registry[e.Name] = e
}

func init() {
	register(newEntry("hashmap", "Go builtin map", func(benchmark.Shape) *HashMap {
		return NewHashMap()
	}))
	register(newEntry("treemap", "red-black tree ordered by key bytes (emirpasic/gods)", func(benchmark.Shape) *TreeMap {
		return NewTreeMap()
	}))
	register(newEntry("djb", "chained hash table, DJB hash", func(benchmark.Shape) *HashTable {
		return NewHashTable("djb", DJB)
	}))
	register(newEntry("murmur3", "chained hash table, murmur3 hash (spaolacci/murmur3)", func(benchmark.Shape) *HashTable {
		return NewHashTable("murmur3", Murmur3)
	}))
	register(newEntry("swiss", "Swiss table (cockroachdb/swiss)", func(benchmark.Shape) *SwissMap {
		return NewSwissMap()
	}))
	register(newEntry("haxmap", "lock-free hash map (alphadose/haxmap)", func(benchmark.Shape) *HaxMap {
		return NewHaxMap()
	}))
	register(newEntry("ring", "builtin maps sharded by consistent hashing (serialx/hashring)", func(benchmark.Shape) *Ring {
		return NewRing(DefaultRingShards)
	}))
}

// Names returns every registered container name, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownContainer, name)
	}
	return e, nil
}
