package mucow

// Equality and ordering over smart pointers. Every function here compares
// the dereferenced views, never the variant tags: a Borrowed and an Owned
// pointer wrapping structurally equal data are indistinguishable to all of
// them.

// Equal reports whether a and b wrap structurally equal data.
func Equal[T comparable](a, b Ptr[T]) bool {
	return *a.Get() == *b.Get()
}

// EqualFunc reports whether a and b wrap equal data under eq. The two
// pointers may range over different types, as long as eq can relate them.
func EqualFunc[T, U any](a Ptr[T], b Ptr[U], eq func(T, U) bool) bool {
	return eq(*a.Get(), *b.Get())
}

// Compare orders a and b by their dereferenced views using T's Comparer
// capability. The result follows the usual contract: negative when a sorts
// before b, zero when equivalent, positive otherwise.
func Compare[T Comparer[T]](a, b Ptr[T]) int {
	return (*a.Get()).Compare(*b.Get())
}

// CompareFunc orders a and b by their dereferenced views using cmp.
func CompareFunc[T any](a, b Ptr[T], cmp func(T, T) int) int {
	return cmp(*a.Get(), *b.Get())
}

// Less reports whether a's view sorts strictly before b's.
func Less[T Comparer[T]](a, b Ptr[T]) bool {
	return Compare(a, b) < 0
}
