package infer

import (
	"github.com/npillmayer/variants"
	"github.com/npillmayer/variants/maybe"
)

// Handlers maps variant names (NameActual, NameGuess, NameGuesses,
// NameUnsolvable, and variants.Fallback) to handlers.
type Handlers[T, R any] map[string]func(Result[T]) R

// MatchesWith calls the handler for r's variant and returns its result as
// Some, following the rules of variants.MatchesWith. In addition, a GuessList
// is matched by the NameGuess handler if there is no NameGuesses handler.
// The reverse does not hold: a Guess is never handed to a NameGuesses handler.
func MatchesWith[T, R any](r Result[T], hs Handlers[T, R]) maybe.Maybe[R] {
	if IsGuessList(r) {
		if _, ok := hs[NameGuesses]; !ok {
			if h := hs[NameGuess]; h != nil {
				tracer().Debugf("matching %v as guess", r)
				return maybe.Some(h(r))
			}
		}
	}
	return variants.MatchesWith(r, variants.Handlers[Result[T], R](hs))
}

// --- Matching --------------------------------------------------------------

// Matcher matches the variants of a Result in a switch statement. Each
// method matches its variant exactly; Guess does not match a GuessList.
type Matcher[T any] interface {
	Actual(*T) Matcher[T]
	Guess(*T) Matcher[T]
	Guesses(*[]T) Matcher[T]
	Unsolvable() Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (a Actual[T]) Match() Matcher[T] { return &matcher[T]{r: a} }
func (g Guess[T]) Match() Matcher[T] { return &matcher[T]{r: g} }
func (g GuessList[T]) Match() Matcher[T] { return &matcher[T]{r: g} }
func (u Unsolvable[T]) Match() Matcher[T] { return &matcher[T]{r: u} }

func (rm *matcher[T]) Actual(v *T) Matcher[T] {
	if a, ok := rm.r.(Actual[T]); ok {
		*v = a.Value()
		return rm
	}
	return nil
}

func (rm *matcher[T]) Guess(v *T) Matcher[T] {
	if g, ok := rm.r.(Guess[T]); ok {
		*v = g.Value()
		return rm
	}
	return nil
}

func (rm *matcher[T]) Guesses(vs *[]T) Matcher[T] {
	if g, ok := rm.r.(GuessList[T]); ok {
		*vs = g.Candidates()
		return rm
	}
	return nil
}

func (rm *matcher[T]) Unsolvable() Matcher[T] {
	if _, ok := rm.r.(Unsolvable[T]); ok {
		return rm
	}
	return nil
}
