package container

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/kvbench/internal/benchmark"
)

var shape = benchmark.Shape{KeySize: 16, ValSize: 8}

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"djb", "hashmap", "haxmap", "murmur3", "ring", "swiss", "treemap"}, names)

	for _, name := range names {
		e, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name)
		assert.NotEmpty(t, e.Description)
		assert.Equal(t, name, e.New(shape).Name())
	}

	_, err := Lookup("btree")
	assert.ErrorIs(t, err, ErrUnknownContainer)
}

func TestSearchReturnsLastInsertedValue(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, err := Lookup(name)
			require.NoError(t, err)
			c := e.New(shape)
			gen := benchmark.NewGenerator(shape, 17)

			want := make(map[benchmark.Key]benchmark.Value)
			for i := 0; i < 2000; i++ {
				k, v := gen.GeneratePair()
				c.Insert(k, v)
				want[k] = v
			}
			// overwrite a subset
			n := 0
			for k, old := range want {
				if n == 300 {
					break
				}
				v := gen.GenerateValue(old)
				c.Insert(k, v)
				want[k] = v
				n++
			}

			for k, v := range want {
				require.Equal(t, v, c.Search(k), "key %s", k.Hex())
			}
		})
	}
}

func TestSearchMissReturnsSentinel(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, err := Lookup(name)
			require.NoError(t, err)
			c := e.New(shape)

			assert.False(t, c.Search(benchmark.Key("absent-key-00000")).Found())

			c.Insert(benchmark.Key("present-key-0000"), benchmark.Value("12345678"))
			assert.False(t, c.Search(benchmark.Key("absent-key-00000")).Found())
			assert.True(t, c.Search(benchmark.Key("present-key-0000")).Found())
		})
	}
}

func TestEntryRun(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, err := Lookup(name)
			require.NoError(t, err)

			req := benchmark.Request{
				Target:       benchmark.TargetLookup,
				Type:         benchmark.ShuffledWithMisses,
				MissFraction: 0.1,
				Trials:       3,
				Elements:     50,
				Iterations:   5000,
			}
			res, err := e.Run(benchmark.NewGenerator(shape, 1), req)
			require.NoError(t, err)

			assert.Equal(t, req, res.Request)
			assert.Equal(t, 50, res.Elements)
			assert.Len(t, res.Durations, 3)
			assert.Positive(t, res.DurationAvg)
		})
	}
}

func TestTreeMapKeysAreOrdered(t *testing.T) {
	m := NewTreeMap()
	gen := benchmark.NewGenerator(shape, 3)
	for i := 0; i < 500; i++ {
		k, v := gen.GeneratePair()
		m.Insert(k, v)
	}

	keys := m.Keys()
	require.Len(t, keys, m.Len())
	for i := 1; i < len(keys); i++ {
		assert.Equal(t, -1, keys[i-1].Compare(keys[i]))
	}
}

func TestHashTableGrows(t *testing.T) {
	ht := NewHashTable("murmur3", Murmur3)
	require.Equal(t, initialBuckets, ht.Buckets())

	for i := 0; i < 1000; i++ {
		ht.Insert(benchmark.Key(fmt.Sprintf("key-%06d", i)), benchmark.Value("v"))
	}
	ht.Insert(benchmark.Key("key-000000"), benchmark.Value("w"))

	assert.Equal(t, 1000, ht.Len())
	assert.GreaterOrEqual(t, ht.Buckets(), 1000)
	assert.Equal(t, benchmark.Value("w"), ht.Search(benchmark.Key("key-000000")))
}

func TestDJB(t *testing.T) {
	assert.Equal(t, uint64(5381), DJB(""))
	assert.Equal(t, uint64(5381*33+'a'), DJB("a"))
	// bytes above 0x7f are added as negative chars
	assert.Equal(t, uint64(5381*33-1), DJB("\xff"))
}

func TestMurmur3IsStable(t *testing.T) {
	assert.Equal(t, Murmur3("abc"), Murmur3(benchmark.Key([]byte("abc"))))
	assert.NotEqual(t, Murmur3("abc"), Murmur3("abd"))
}

func TestRingSpreadsKeys(t *testing.T) {
	r := NewRing(DefaultRingShards)
	gen := benchmark.NewGenerator(shape, 5)
	for i := 0; i < 4000; i++ {
		k, v := gen.GeneratePair()
		r.Insert(k, v)
	}

	sizes := r.ShardSizes()
	assert.Len(t, sizes, DefaultRingShards)
	total := 0
	for name, n := range sizes {
		assert.Positive(t, n, name)
		total += n
	}
	assert.Equal(t, r.Len(), total)
	assert.Equal(t, 4000, total)
}
