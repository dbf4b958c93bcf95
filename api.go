// Package mucow provides clone-on-consume and clone-on-write smart pointers.
//
// The package offers two generic pointer types over a cloneable value type T:
//
//   - MutCow[T]: holds either an exclusive mutable borrow of caller-owned
//     data or an owned value, and clones exactly once, exactly when ownership
//     is extracted from a still-borrowed instance.
//   - Cow[T]: the immutable clone-on-write counterpart, which clones lazily
//     on first mutable access instead.
//
// # Variants
//
// Both types are two-state tagged values:
//
//   - Borrowed: wraps a *T pointing at data owned elsewhere. The pointer's
//     lifetime is bounded by the referent's, and the caller must guarantee
//     no other access path to the referent exists while the pointer is live.
//   - Owned: wraps a T held by value, exclusively owned by the instance.
//
// Exactly one state is active at any time. Read access never clones in
// either type. MutCow mutates the active representation in place and never
// clones on mutable access; Cow promotes Borrowed to Owned by cloning on
// first mutable access.
//
// # Basic Usage
//
//	data := mucow.Slice[int]{1, 2, 3}
//
//	// Borrow caller-owned data. Mutations apply to `data` directly.
//	ptr := mucow.Borrowed(&data)
//	*ptr.Mut() = append(*ptr.Mut(), 4)
//
//	// Extract ownership. This is the one point where a clone happens.
//	owned := ptr.IntoOwned()
//
// # Capabilities
//
// The only bound on the type definitions is Cloner[T], the capability to
// produce an owned copy from a value. Everything optional - equality,
// ordering, hashing - is a bound on the package-level function that needs
// it, so a MutCow over a type lacking, say, ordering simply has no Compare
// to call:
//
//   - Equal / EqualFunc: structural equality of the dereferenced views
//   - Compare / CompareFunc: ordering via the Comparer capability
//   - Hash / Sum256: hashing via the Hashable capability
//
// All of them see through the variant tag: a Borrowed and an Owned instance
// wrapping equal data compare equal and hash identically.
//
// # Ready-Made Value Types
//
// Common Go shapes ship with the Cloner capability attached: Slice, Bytes,
// Map, Str, and Scalar. Any user type with a deep Clone method works the
// same way.
//
// # Concurrency
//
// Neither pointer type carries internal synchronization. A Borrowed instance
// holds an exclusive reference whose exclusivity is the caller's to uphold;
// sharing one across goroutines without external locking is a data race.
// Independent clones are fully isolated and safe to hand to other goroutines.
package mucow

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with MutCow and Cow.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or maps,
// ensure these are also copied to achieve true isolation.
//
// For simple value types with no pointers, slices, or maps, Clone can simply return
// the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}
