package benchmark

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// KeyPattern selects how key bytes are produced
type KeyPattern string

const (
	// PatternRandom fills every key byte uniformly at random
	PatternRandom KeyPattern = "random"
	// PatternUUIDv4 lays a random version 4 UUID over the key buffer
	PatternUUIDv4 KeyPattern = "uuidv4"
	// PatternULID lays a ULID over the key buffer; successive keys are time-ordered
	PatternULID KeyPattern = "ulid"
)

// KeyPatterns lists every supported pattern
var KeyPatterns = []KeyPattern{PatternRandom, PatternUUIDv4, PatternULID}

// patternIDSize is the length of a UUID or ULID
const patternIDSize = 16

// MinKeySize is the smallest key that holds the whole pattern. Shorter keys are
// filled at random, because a truncated UUID keeps its fixed version bits and a
// truncated ULID keeps only its timestamp.
func (p KeyPattern) MinKeySize() int {
	if p == PatternRandom {
		return 1
	}
	return patternIDSize
}

func ParseKeyPattern(s string) (KeyPattern, error) {
	for _, p := range KeyPatterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown key pattern %q", s)
}

// Generator produces random key/value pairs of a fixed shape and the uniform draws
// used for shuffling. It owns its RNG state and is not safe for concurrent use.
type Generator struct {
	shape   Shape
	src     *rand.ChaCha8
	rng     *rand.Rand
	pattern KeyPattern

	// next ULID timestamp in milliseconds
	ulidMillis uint64

	keyBuf []byte
	valBuf []byte
}

type GeneratorOption func(*Generator)

// WithKeyPattern switches key generation away from uniform random bytes
func WithKeyPattern(p KeyPattern) GeneratorOption {
	return func(g *Generator) {
		g.pattern = p
	}
}

// WithClock sets the start time for ULID timestamps
func WithClock(t time.Time) GeneratorOption {
	return func(g *Generator) {
		g.ulidMillis = ulid.Timestamp(t)
	}
}

// NewGenerator creates a generator whose output is fully determined by seed
func NewGenerator(shape Shape, seed uint64, opts ...GeneratorOption) *Generator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	src := rand.NewChaCha8(s)

	g := &Generator{
		shape:      shape,
		src:        src,
		rng:        rand.New(src),
		pattern:    PatternRandom,
		ulidMillis: ulid.Timestamp(time.Now()),
		keyBuf:     make([]byte, shape.KeySize),
		valBuf:     make([]byte, shape.ValSize),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Shape() Shape {
	return g.shape
}

// GeneratePair fills a key and a value with independent random bytes.
// Nothing prevents two calls from returning the same key.
func (g *Generator) GeneratePair() (Key, Value) {
	g.fillKey()
	g.src.Read(g.valBuf)
	return Key(g.keyBuf), Value(g.valBuf)
}

// GenerateValue returns a random value different from old
func (g *Generator) GenerateValue(old Value) Value {
	for {
		g.src.Read(g.valBuf)
		if v := Value(g.valBuf); v != old || len(g.valBuf) == 0 {
			return v
		}
	}
}

// GenerateUniform returns a non-negative int32 draw reduced modulo max.
// The modulo reduction is slightly biased for large max.
func (g *Generator) GenerateUniform(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	return uint64(g.rng.Int32()) % max
}

func (g *Generator) fillKey() {
	var id []byte
	if len(g.keyBuf) < g.pattern.MinKeySize() {
		g.src.Read(g.keyBuf)
		return
	}

	switch g.pattern {
	case PatternUUIDv4:
		if u, err := uuid.NewRandomFromReader(g.src); err == nil {
			id = u[:]
		}
	case PatternULID:
		if u, err := ulid.New(g.ulidMillis, g.src); err == nil {
			id = u[:]
			g.ulidMillis++
		}
	}

	n := copy(g.keyBuf, id)
	if n < len(g.keyBuf) {
		g.src.Read(g.keyBuf[n:])
	}
}
