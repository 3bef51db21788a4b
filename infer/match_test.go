package infer_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/variants"
	"github.com/npillmayer/variants/infer"
)

// recorder counts handler calls per variant key.
type recorder map[string]int

func (rec recorder) handler(key string, ok bool) func(infer.Result[int]) bool {
	return func(infer.Result[int]) bool {
		rec[key]++
		return ok
	}
}

func TestMatchesWithActualOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variants.infer")
	defer teardown()
	//
	rec := recorder{}
	r := infer.MatchesWith[int, bool](infer.NewActual(1), infer.Handlers[int, bool]{
		infer.NameUnsolvable: rec.handler(infer.NameUnsolvable, false),
		infer.NameGuess:      rec.handler(infer.NameGuess, false),
		infer.NameGuesses:    rec.handler(infer.NameGuesses, false),
		infer.NameActual:     rec.handler(infer.NameActual, true),
	})
	if !r.WithDefault(false) {
		t.Error("expected match to select the actual handler, didn't")
	}
	assert.Equal(t, recorder{infer.NameActual: 1}, rec)
}

func TestMatchesWithUnhandledGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variants.infer")
	defer teardown()
	//
	rec := recorder{}
	r := infer.MatchesWith[int, bool](infer.NewGuess(1), infer.Handlers[int, bool]{
		infer.NameActual:     rec.handler(infer.NameActual, true),
		infer.NameUnsolvable: rec.handler(infer.NameUnsolvable, true),
	})
	if r.IsSome() {
		t.Errorf("expected unhandled guess to match None, is %v", r)
	}
	assert.Empty(t, rec)
}

func TestMatchesWithGuessLike(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "variants.infer")
	defer teardown()
	//
	guesses := infer.MustGuessList(1, 2)
	rec := recorder{}
	r := infer.MatchesWith[int, bool](guesses, infer.Handlers[int, bool]{
		infer.NameGuess: rec.handler(infer.NameGuess, true),
	})
	assert.True(t, r.WithDefault(false), "guess list falls back to guess handler")
	assert.Equal(t, recorder{infer.NameGuess: 1}, rec)

	rec = recorder{}
	infer.MatchesWith[int, bool](guesses, infer.Handlers[int, bool]{
		infer.NameGuess:   rec.handler(infer.NameGuess, true),
		infer.NameGuesses: rec.handler(infer.NameGuesses, true),
	})
	assert.Equal(t, recorder{infer.NameGuesses: 1}, rec, "explicit guesses handler wins")

	rec = recorder{}
	r = infer.MatchesWith[int, bool](infer.NewGuess(1), infer.Handlers[int, bool]{
		infer.NameGuesses: rec.handler(infer.NameGuesses, true),
	})
	assert.False(t, r.IsSome(), "a guess never falls back to a guesses handler")
	assert.Empty(t, rec)
}

func TestMatchesWithFallback(t *testing.T) {
	hs := infer.Handlers[string, string]{
		infer.NameActual:  func(r infer.Result[string]) string { return "final " + r.Value() },
		variants.Fallback: func(r infer.Result[string]) string { return "open " + r.Variant() },
	}
	v := infer.MatchesWith[string, string](infer.NewActual("a"), hs).WithDefault("")
	assert.Equal(t, "final a", v)
	v = infer.MatchesWith[string, string](infer.NewUnsolvable[string](), hs).WithDefault("")
	assert.Equal(t, "open Unsolvable", v)
	v = infer.MatchesWith[string, string](infer.MustGuessList("a"), hs).WithDefault("")
	assert.Equal(t, "open Guesses", v)
}

func TestMatchesWithNil(t *testing.T) {
	r := infer.MatchesWith[int, int](nil, infer.Handlers[int, int]{
		variants.Fallback: func(infer.Result[int]) int { return 1 },
	})
	if r.IsSome() {
		t.Errorf("expected nil result to match None, is %v", r)
	}
}

func TestMatcherSwitch(t *testing.T) {
	describe := func(r infer.Result[string]) string {
		var v string
		var vs []string
		switch m := r.Match(); m {
		case m.Actual(&v):
			return "actual " + v
		case m.Guess(&v):
			return "guess " + v
		case m.Guesses(&vs):
			return "guesses " + vs[0]
		case m.Unsolvable():
			return "unsolvable"
		}
		return "?"
	}
	cases := []struct {
		r    infer.Result[string]
		want string
	}{
		{infer.NewActual("a"), "actual a"},
		{infer.NewGuess("b"), "guess b"},
		{infer.MustGuessList("c", "d"), "guesses c"},
		{infer.NewUnsolvable[string](), "unsolvable"},
		{infer.MustGuessList("c", "d").Decline(), "guesses d"},
	}
	for _, c := range cases {
		if got := describe(c.r); got != c.want {
			t.Errorf("expected %v to match as %q, is %q", c.r, c.want, got)
		}
	}
}
