/*
Package maybe implements an option type with variants Some and None.

Values are matched either by variant name (see variants.MatchesWith) or with
a switch statement:

	var v int
	switch m := x.Match(); m {
	case m.Some(&v):
	    …
	case m.None():
	    …
	}
*/
package maybe

import "fmt"

// Maybe is either Some value or None.
type Maybe[T any] interface {
	Variant() string
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsSome() bool
}

// Variant names of Maybe.
const (
	NameSome = "Some"
	NameNone = "None"
)

type some[T any] struct {
	value T
}

type none[T any] struct{}

// Some wraps x into a present Maybe.
func Some[T any](x T) Maybe[T] {
	return some[T]{value: x}
}

// None returns an absent Maybe.
func None[T any]() Maybe[T] {
	return none[T]{}
}

// New returns None if x is the zero value of T, else Some(x).
func New[T comparable](x T) Maybe[T] {
	var zero T
	if x == zero {
		return None[T]()
	}
	return Some(x)
}

// IsSome reports whether x is a Some variant of any type.
func IsSome(x any) bool {
	_, ok := x.(interface{ isSome() })
	return ok
}

// IsNone reports whether x is a None variant of any type.
func IsNone(x any) bool {
	_, ok := x.(interface{ isNone() })
	return ok
}

func (s some[T]) isSome() {}
func (n none[T]) isNone() {}

func (s some[T]) Variant() string { return NameSome }
func (n none[T]) Variant() string { return NameNone }

func (s some[T]) IsSome() bool { return true }
func (n none[T]) IsSome() bool { return false }

func (s some[T]) String() string { return fmt.Sprintf("Some(%v)", s.value) }
func (n none[T]) String() string { return "None" }

func (s some[T]) WithDefault(T) T {
	return s.value
}

func (n none[T]) WithDefault(def T) T {
	return def
}

func (s some[T]) Map(f func(T) T) Maybe[T] {
	return Some(f(s.value))
}

func (n none[T]) Map(func(T) T) Maybe[T] {
	return n
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return f(v)
	case m.None():
	}
	return None[S]()
}

// Map applies f to the value of x, if present.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return Some(f(v))
	case m.None():
	}
	return None[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher matches the variants of a Maybe in a switch statement.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (s some[T]) Match() Matcher[T] {
	return &matcher[T]{m: s}
}

func (n none[T]) Match() Matcher[T] {
	return &matcher[T]{m: n}
}

func (mm *matcher[T]) Some(v *T) Matcher[T] {
	if s, ok := mm.m.(some[T]); ok {
		*v = s.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) None() Matcher[T] {
	if _, ok := mm.m.(none[T]); ok {
		return mm
	}
	return nil
}
