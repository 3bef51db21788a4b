/*
Package infer implements inference results: values which either are final
(Actual), are candidates still awaiting confirmation (Guess, GuessList), or
have run out of candidates (Unsolvable).

Candidates follow a small protocol. Confirm commits to the current candidate
and yields an Actual; Decline drops it and yields the remaining candidates
or, if none are left, Unsolvable:

	g := infer.MustGuessList("a", "b")
	g.Confirm()                   // => Actual(a)
	g.Decline()                   // => Guesses[b]
	infer.NewGuess("a").Decline() // => Unsolvable

Only Guess and GuessList carry Confirm and Decline; the final states do not.
What is being guessed is up to the client.

All values are immutable, transitions create new values. It is therefore safe
to share results between goroutines.

Clients inspect results either by variant name,

	infer.MatchesWith(r, infer.Handlers[int, string]{
	    infer.NameActual:     func(r infer.Result[int]) string { … },
	    infer.NameGuess:      func(r infer.Result[int]) string { … },
	    infer.NameUnsolvable: func(r infer.Result[int]) string { … },
	})

where a GuessList is handed to the NameGuess handler if no NameGuesses
handler is present, or with a switch statement:

	switch m := r.Match(); m {
	case m.Actual(&v):
	case m.Guess(&v):
	case m.Guesses(&vs):
	case m.Unsolvable():
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package infer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'variants.infer'.
func tracer() tracing.Trace {
	return tracing.Select("variants.infer")
}
