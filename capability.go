package mucow

// Optional capabilities. None of these are required by MutCow or Cow
// themselves; each unlocks the package-level functions that need it.
// A type that lacks a capability simply cannot be passed to the
// corresponding function - there is no runtime failure mode.

// Ptr is the read surface shared by *MutCow and *Cow. Package-level
// functions that only need to look at the dereferenced view take a Ptr, so
// they work across both pointer types - and across the two variants of
// either, since Get sees through the tag.
type Ptr[T any] interface {
	Get() *T
}

// Comparer is the ordering capability.
// Compare returns a negative value when the receiver sorts before other,
// zero when they are equivalent, and a positive value otherwise.
// This is the same contract as time.Time.Compare.
type Comparer[T any] interface {
	Compare(other T) int
}

// Hashable is the hashing capability: a canonical byte encoding of the
// value, appended to dst.
//
// The encoding must be injective for values the caller considers distinct -
// two values that compare unequal must append different bytes. Variable
// length components should be length-prefixed (see AppendLen) so adjacent
// components cannot collide.
type Hashable interface {
	AppendHash(dst []byte) []byte
}
