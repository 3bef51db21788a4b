/*
Package either implements a tagged union with branches Left and Right.

Either does not favour one of its branches: there is no notion of success or
failure attached to Left or Right.
*/
package either

import (
	"fmt"

	"github.com/npillmayer/variants"
)

// Either is either a Left value or a Right value.
type Either[L, R any] interface {
	variants.Matchable
	Match() Matcher[L, R]
	sealed()
}

// Variant names of Either.
const (
	NameLeft  = "Left"
	NameRight = "Right"
)

type left[L, R any] struct {
	variants.Base[L]
}

type right[L, R any] struct {
	variants.Base[R]
}

// Left creates a Left branch.
func Left[L, R any](x L) Either[L, R] {
	return left[L, R]{variants.Hold(x)}
}

// Right creates a Right branch.
func Right[L, R any](x R) Either[L, R] {
	return right[L, R]{variants.Hold(x)}
}

// IsLeft reports whether x is a Left branch of any type.
func IsLeft(x any) bool {
	return variants.Is[interface{ isLeft() }](x)
}

// IsRight reports whether x is a Right branch of any type.
func IsRight(x any) bool {
	return variants.Is[interface{ isRight() }](x)
}

func (l left[L, R]) sealed() {}
func (r right[L, R]) sealed() {}
func (l left[L, R]) isLeft() {}
func (r right[L, R]) isRight() {}

func (l left[L, R]) Variant() string { return NameLeft }
func (r right[L, R]) Variant() string { return NameRight }

func (l left[L, R]) String() string { return fmt.Sprintf("Left(%v)", l.Value()) }
func (r right[L, R]) String() string { return fmt.Sprintf("Right(%v)", r.Value()) }

// Fold eliminates e by applying onLeft or onRight to its value.
func Fold[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher matches the branches of an Either in a switch statement.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e Either[L, R]
}

func (l left[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: l}
}

func (r right[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: r}
}

func (em *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if l, ok := em.e.(left[L, R]); ok {
		*v = l.Value()
		return em
	}
	return nil
}

func (em *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if r, ok := em.e.(right[L, R]); ok {
		*v = r.Value()
		return em
	}
	return nil
}
