package variants

// Base holds the immutable payload of a variant. Variant types embed it.
type Base[T any] struct {
	value T
}

// Hold wraps v into a Base.
func Hold[T any](v T) Base[T] {
	return Base[T]{value: v}
}

// Value returns the payload.
func (b Base[T]) Value() T {
	return b.value
}

// --- Matchable -------------------------------------------------------------

// Matchable is an interface for types which can be pattern-matched by
// variant name.
type Matchable interface {
	Variant() string
}

// NameOf returns the variant name of x. If x is nil or is not Matchable,
// NameOf returns false.
func NameOf(x any) (string, bool) {
	if x == nil {
		return "", false
	}
	m, ok := x.(Matchable)
	if !ok {
		return "", false
	}
	return m.Variant(), true
}

// Is reports whether x is of type V. V usually is a marker interface of a
// single variant, which makes types embedding the variant members, too.
func Is[V any](x any) bool {
	_, ok := x.(V)
	return ok
}
