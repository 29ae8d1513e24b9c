package benchmark

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Shape fixes the byte lengths of every key and value in one benchmark configuration
type Shape struct {
	KeySize int `yaml:"key_size"`
	ValSize int `yaml:"value_size"`
}

func (s Shape) String() string {
	return fmt.Sprintf("<%d, %d>", s.KeySize, s.ValSize)
}

// Key is a fixed-length opaque byte sequence. Ordering and equality are byte-wise
// over the whole buffer, which is exactly what Go string comparison does.
type Key string

// Value is a fixed-length opaque byte sequence. The zero Value is the miss sentinel.
type Value string

func (k Key) Compare(other Key) int {
	return strings.Compare(string(k), string(other))
}

func (k Key) Equal(other Key) bool {
	return k == other
}

// Hex dumps the key the way it is laid out in memory
func (k Key) Hex() string {
	return hex.EncodeToString([]byte(k))
}

func (v Value) Equal(other Value) bool {
	return v == other
}

func (v Value) Hex() string {
	return hex.EncodeToString([]byte(v))
}

// Found reports whether v is a real stored value rather than the miss sentinel
func (v Value) Found() bool {
	return len(v) > 0
}
