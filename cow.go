package mucow

import "fmt"

// Cow is an immutable clone-on-write smart pointer: the conversion target of
// MutCow.Cow, and the shape to reach for when read access dominates.
//
// Where MutCow writes through its borrow in place, Cow keeps borrowed data
// untouched: the first call to Mut on a Borrowed instance clones the data
// into the Owned variant and all mutation lands on the copy. Duplicating a
// Borrowed Cow is free - an immutable borrow may be shared - so Clone only
// pays for a copy when the source is Owned.
//
// The zero value is Owned over T's zero value and ready to use.
type Cow[T Cloner[T]] struct {
	borrowed *T
	owned    T
}

// CowBorrowed returns a Cow borrowing the data p points at.
//
// The referent stays owned by the caller and is never written through:
// mutation via Mut copies first. Panics if p is nil.
func CowBorrowed[T Cloner[T]](p *T) Cow[T] {
	if p == nil {
		panic("mucow: CowBorrowed called with nil pointer")
	}
	return Cow[T]{borrowed: p}
}

// CowOwned returns a Cow taking ownership of v.
func CowOwned[T Cloner[T]](v T) Cow[T] {
	return Cow[T]{owned: v}
}

// IsBorrowed reports whether the borrowed variant is active.
func (c Cow[T]) IsBorrowed() bool { return c.borrowed != nil }

// IsOwned reports whether the owned variant is active.
func (c Cow[T]) IsOwned() bool { return c.borrowed == nil }

// Get returns a read-only view of the active data. It never clones.
func (c *Cow[T]) Get() *T {
	if c.borrowed != nil {
		return c.borrowed
	}
	return &c.owned
}

// Mut returns a mutable view of the data, promoting to Owned first when
// necessary. A Borrowed instance clones its referent exactly once, on the
// first call; the borrowed original is never written through. Subsequent
// calls mutate the owned copy in place with no further clones.
func (c *Cow[T]) Mut() *T {
	if c.borrowed != nil {
		c.owned = (*c.borrowed).Clone()
		c.borrowed = nil
		emitPromote[T]()
	}
	return &c.owned
}

// IntoOwned extracts the owned data, consuming the pointer.
//
// A Borrowed instance clones the referenced data exactly once, an Owned
// instance returns its held value with no clone. The receiver must not be
// used afterwards.
func (c Cow[T]) IntoOwned() T {
	if c.borrowed != nil {
		v := (*c.borrowed).Clone()
		emitConsume[T](variantBorrowed, true)
		return v
	}
	emitConsume[T](variantOwned, false)
	return c.owned
}

// Clone duplicates the pointer. A Borrowed instance duplicates as another
// borrow of the same data with no clone; an Owned instance clones its value.
func (c *Cow[T]) Clone() Cow[T] {
	if c.borrowed != nil {
		return Cow[T]{borrowed: c.borrowed}
	}
	emitDuplicate[T](variantOwned)
	return CowOwned(c.owned.Clone())
}

// Format implements fmt.Formatter by delegating every verb to the active
// view, so both variants format exactly as the underlying data does.
func (c Cow[T]) Format(f fmt.State, verb rune) {
	var v T
	if c.borrowed != nil {
		v = *c.borrowed
	} else {
		v = c.owned
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v)
}
