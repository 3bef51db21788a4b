package infer

import (
	"errors"
	"fmt"

	"github.com/npillmayer/variants"
)

// ErrConstraintViolation is returned when a result is constructed from
// arguments it cannot represent, e.g. a GuessList without candidates.
var ErrConstraintViolation = errors.New("constraint violation")

// Candidate is implemented by the results which are still open for
// confirmation: Guess and GuessList.
type Candidate[T any] interface {
	Result[T]
	// Confirm commits to the current candidate.
	Confirm() Actual[T]
	// Decline drops the current candidate. It returns a GuessList with the
	// remaining candidates, or Unsolvable if there are none.
	Decline() Result[T]
}

// AsCandidate returns r as a Candidate, if r is a Guess or a GuessList.
func AsCandidate[T any](r Result[T]) (Candidate[T], bool) {
	c, ok := r.(Candidate[T])
	return c, ok
}

// Settle walks through the candidates of c, confirming the first one for
// which accept returns true. If accept rejects every candidate, Settle
// returns Unsolvable.
func Settle[T any](c Candidate[T], accept func(T) bool) Result[T] {
	for {
		if accept(c.Value()) {
			return c.Confirm()
		}
		next, ok := AsCandidate(c.Decline())
		if !ok {
			return NewUnsolvable[T]()
		}
		c = next
	}
}

// --- Guess -----------------------------------------------------------------

// Guess is a single candidate.
type Guess[T any] struct {
	variants.Base[T]
}

// NewGuess creates a single candidate.
func NewGuess[T any](x T) Guess[T] {
	return Guess[T]{variants.Hold(x)}
}

// Confirm turns the guess into an Actual.
func (g Guess[T]) Confirm() Actual[T] {
	tracer().Debugf("confirmed guess %v", g.Value())
	return NewActual(g.Value())
}

// Decline always returns Unsolvable, as a guess has no further candidates.
func (g Guess[T]) Decline() Result[T] {
	tracer().Debugf("declined guess %v", g.Value())
	return NewUnsolvable[T]()
}

func (g Guess[T]) sealed() {}
func (g Guess[T]) isGuess() {}
func (g Guess[T]) Variant() string { return NameGuess }

func (g Guess[T]) String() string {
	return fmt.Sprintf("Guess(%v)", g.Value())
}

// --- GuessList -------------------------------------------------------------

// GuessList is a non-empty list of candidates, ordered by preference.
// Its value is the first candidate.
type GuessList[T any] struct {
	variants.Base[T]
	candidates []T
}

// NewGuessList creates a list of candidates, the most preferred one first.
// If candidates is empty, NewGuessList returns an error wrapping
// ErrConstraintViolation.
func NewGuessList[T any](candidates ...T) (GuessList[T], error) {
	if len(candidates) == 0 {
		return GuessList[T]{}, fmt.Errorf("%w: guess list needs at least one candidate",
			ErrConstraintViolation)
	}
	cs := make([]T, len(candidates))
	copy(cs, candidates)
	return guessList(cs), nil
}

// MustGuessList is like NewGuessList, but panics for an empty list.
func MustGuessList[T any](candidates ...T) GuessList[T] {
	g, err := NewGuessList(candidates...)
	if err != nil {
		panic(err)
	}
	return g
}

// guessList wraps cs without copying; cs must not be modified afterwards.
func guessList[T any](cs []T) GuessList[T] {
	return GuessList[T]{Base: variants.Hold(cs[0]), candidates: cs}
}

// Len returns the number of remaining candidates.
func (g GuessList[T]) Len() int {
	return len(g.candidates)
}

// Candidates returns a copy of the remaining candidates.
func (g GuessList[T]) Candidates() []T {
	cs := make([]T, len(g.candidates))
	copy(cs, g.candidates)
	return cs
}

// Confirm turns the first candidate into an Actual.
func (g GuessList[T]) Confirm() Actual[T] {
	tracer().Debugf("confirmed candidate %v of %d", g.Value(), len(g.candidates))
	return NewActual(g.Value())
}

// Decline drops the first candidate. If it was the last one, Decline
// returns Unsolvable.
func (g GuessList[T]) Decline() Result[T] {
	n := len(g.candidates)
	if n < 2 {
		tracer().Debugf("declined last candidate %v", g.Value())
		return NewUnsolvable[T]()
	}
	tracer().Debugf("declined candidate %v, %d left", g.Value(), n-1)
	// the remaining candidates share the backing array, which is never written to
	return guessList(g.candidates[1:n:n])
}

func (g GuessList[T]) sealed() {}
func (g GuessList[T]) isGuessList() {}
func (g GuessList[T]) Variant() string { return NameGuesses }

func (g GuessList[T]) String() string {
	return fmt.Sprintf("%s%v", NameGuesses, g.candidates)
}

var _ Candidate[int] = Guess[int]{}
var _ Candidate[int] = GuessList[int]{}
var _ Result[int] = Actual[int]{}
var _ Result[int] = Unsolvable[int]{}
