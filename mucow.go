package mucow

import "fmt"

// MutCow is a clone-on-consume smart pointer: a two-variant value holding
// either an exclusive mutable borrow of caller-owned data or an owned copy.
//
// Unlike Cow, mutable access through Mut never clones - it writes through
// whichever representation is active. Cloning happens at exactly one point:
// extracting ownership from a still-borrowed instance via IntoOwned (or
// duplicating the pointer itself via Clone, which must materialize an owned
// copy because a duplicate cannot share an exclusive borrow).
//
// The zero value is Owned over T's zero value and ready to use.
//
// MutCow is not safe for concurrent use. A Borrowed instance additionally
// requires that no other access path to the referent exists for the
// instance's lifetime; Go cannot enforce this, so it is a documented caller
// obligation.
type MutCow[T Cloner[T]] struct {
	borrowed *T
	owned    T
}

// Borrowed returns a MutCow borrowing the data p points at.
//
// The referent stays owned by the caller: mutations through Mut apply to it
// directly, and no clone occurs until IntoOwned or Clone. The caller must
// guarantee p is non-nil and is the only live reference to the referent for
// the returned instance's lifetime. Panics if p is nil.
func Borrowed[T Cloner[T]](p *T) MutCow[T] {
	if p == nil {
		panic("mucow: Borrowed called with nil pointer")
	}
	return MutCow[T]{borrowed: p}
}

// Owned returns a MutCow taking ownership of v.
func Owned[T Cloner[T]](v T) MutCow[T] {
	return MutCow[T]{owned: v}
}

// Zero returns an Owned MutCow holding T's zero value.
func Zero[T Cloner[T]]() MutCow[T] {
	return MutCow[T]{}
}

// IsBorrowed reports whether the borrowed variant is active.
func (c MutCow[T]) IsBorrowed() bool { return c.borrowed != nil }

// IsOwned reports whether the owned variant is active.
func (c MutCow[T]) IsOwned() bool { return c.borrowed == nil }

// Get returns a read-only view of the active data. It never clones.
//
// The returned pointer is a view, not a transfer: callers must not mutate
// through it (use Mut) and must not retain it past the instance's lifetime.
func (c *MutCow[T]) Get() *T {
	return c.view()
}

// Mut returns a mutable view of the active data.
//
// Mutation is applied in place to whichever representation is active: a
// Borrowed instance writes through to the caller's data and is NOT promoted
// to Owned, an Owned instance mutates its held value. Mut never clones and
// never allocates.
func (c *MutCow[T]) Mut() *T {
	return c.view()
}

func (c *MutCow[T]) view() *T {
	if c.borrowed != nil {
		return c.borrowed
	}
	return &c.owned
}

// IntoOwned extracts the owned data, consuming the pointer.
//
// This is the single clone-triggering operation: a Borrowed instance clones
// the referenced data exactly once, an Owned instance returns its held value
// with no clone. The receiver must not be used afterwards.
func (c MutCow[T]) IntoOwned() T {
	if c.borrowed != nil {
		v := (*c.borrowed).Clone()
		emitConsume[T](variantBorrowed, true)
		return v
	}
	emitConsume[T](variantOwned, false)
	return c.owned
}

// Clone duplicates the pointer, always yielding an Owned instance holding a
// clone of the current view - even when the source is already Owned.
//
// A duplicate of a Borrowed instance cannot hold a second exclusive borrow
// of the same data, so duplication eagerly materializes an owned copy.
func (c *MutCow[T]) Clone() MutCow[T] {
	emitDuplicate[T](c.variant())
	return Owned((*c.view()).Clone())
}

// Cow converts the pointer into its immutable clone-on-write counterpart,
// consuming it. Borrowed maps to a borrowed Cow (the exclusive borrow is
// treated as shared from here on), Owned maps to an owned Cow. No clone
// occurs. The receiver must not be used afterwards.
func (c MutCow[T]) Cow() Cow[T] {
	if c.borrowed != nil {
		return Cow[T]{borrowed: c.borrowed}
	}
	return Cow[T]{owned: c.owned}
}

// Format implements fmt.Formatter by delegating every verb to the active
// view, so both variants format exactly as the underlying data does.
func (c MutCow[T]) Format(f fmt.State, verb rune) {
	var v T
	if c.borrowed != nil {
		v = *c.borrowed
	} else {
		v = c.owned
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v)
}

func (c *MutCow[T]) variant() string {
	if c.borrowed != nil {
		return variantBorrowed
	}
	return variantOwned
}
