package mucow

import (
	"maps"
	"slices"
	"strings"
)

// Ready-made value types: common Go shapes with the Cloner capability
// attached, so they drop straight into MutCow and Cow. Clone semantics are
// one level deep - elements are copied by assignment - which matches the
// capability contract for element types without interior pointers. Wrap
// element types that need deeper copies in your own Cloner instead.

// Slice is a []E with the Cloner capability.
type Slice[E any] []E

// Clone returns a copy of s with its own backing array.
func (s Slice[E]) Clone() Slice[E] {
	return slices.Clone(s)
}

// Bytes is a []byte with the Cloner, Hashable, and Stringer capabilities.
type Bytes []byte

// Clone returns a copy of b with its own backing array.
func (b Bytes) Clone() Bytes {
	return slices.Clone(b)
}

// AppendHash appends b's canonical encoding: a length prefix followed by
// the raw bytes.
func (b Bytes) AppendHash(dst []byte) []byte {
	return append(AppendLen(dst, len(b)), b...)
}

func (b Bytes) String() string {
	return string(b)
}

// Map is a map[K]V with the Cloner capability.
type Map[K comparable, V any] map[K]V

// Clone returns a copy of m with its own buckets.
func (m Map[K, V]) Clone() Map[K, V] {
	return maps.Clone(m)
}

// Str is a string with the Cloner, Comparer, Hashable, and Stringer
// capabilities. Strings are immutable, so Clone returns the receiver.
type Str string

func (s Str) Clone() Str {
	return s
}

// Compare orders s against other lexically.
func (s Str) Compare(other Str) int {
	return strings.Compare(string(s), string(other))
}

// AppendHash appends s's canonical encoding: a length prefix followed by
// the raw bytes.
func (s Str) AppendHash(dst []byte) []byte {
	return append(AppendLen(dst, len(s)), string(s)...)
}

func (s Str) String() string {
	return string(s)
}

// Scalar wraps a trivially copyable comparable value, giving types like int
// or struct keys the Cloner capability plus Equal support.
type Scalar[T comparable] struct {
	V T
}

func (s Scalar[T]) Clone() Scalar[T] {
	return s
}
