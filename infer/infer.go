package infer

import (
	"fmt"

	"github.com/npillmayer/variants"
)

// Result is the sum type of Actual, Guess, GuessList and Unsolvable.
type Result[T any] interface {
	variants.Matchable
	Value() T
	Match() Matcher[T]
	sealed()
}

// Variant names, used as keys for Handlers.
const (
	NameActual     = "Actual"
	NameGuess      = "Guess"
	NameGuesses    = "Guesses" // variant name of GuessList
	NameUnsolvable = "Unsolvable"
)

// --- Actual ----------------------------------------------------------------

// Actual is a confirmed result.
type Actual[T any] struct {
	variants.Base[T]
}

// NewActual creates a confirmed result.
func NewActual[T any](x T) Actual[T] {
	return Actual[T]{variants.Hold(x)}
}

func (a Actual[T]) sealed() {}
func (a Actual[T]) isActual() {}
func (a Actual[T]) Variant() string { return NameActual }

func (a Actual[T]) String() string {
	return fmt.Sprintf("Actual(%v)", a.Value())
}

// --- Unsolvable ------------------------------------------------------------

// Unsolvable is the result of declining every candidate. It carries no value;
// Value returns the zero value of T.
type Unsolvable[T any] struct{}

// NewUnsolvable creates an Unsolvable.
func NewUnsolvable[T any]() Unsolvable[T] {
	return Unsolvable[T]{}
}

func (u Unsolvable[T]) Value() T {
	var zero T
	return zero
}

func (u Unsolvable[T]) sealed() {}
func (u Unsolvable[T]) isUnsolvable() {}
func (u Unsolvable[T]) Variant() string { return NameUnsolvable }
func (u Unsolvable[T]) String() string { return NameUnsolvable }

// --- Membership ------------------------------------------------------------

// IsActual reports whether x is an Actual, for any type parameter.
// Types embedding Actual are Actuals as well.
func IsActual(x any) bool {
	return variants.Is[interface{ isActual() }](x)
}

// IsGuess reports whether x is a Guess, for any type parameter.
// A GuessList is not a Guess.
func IsGuess(x any) bool {
	return variants.Is[interface{ isGuess() }](x)
}

// IsGuessList reports whether x is a GuessList, for any type parameter.
func IsGuessList(x any) bool {
	return variants.Is[interface{ isGuessList() }](x)
}

// IsUnsolvable reports whether x is an Unsolvable, for any type parameter.
func IsUnsolvable(x any) bool {
	return variants.Is[interface{ isUnsolvable() }](x)
}

// IsGuessLike reports whether x is either a Guess or a GuessList.
func IsGuessLike(x any) bool {
	return IsGuess(x) || IsGuessList(x)
}
