package variants

import "github.com/npillmayer/variants/maybe"

// Fallback is the handler key which catches every variant without a handler
// of its own.
const Fallback = "None"

// Handlers maps variant names to handlers. A is the type the handlers
// receive, usually the sum type's interface.
type Handlers[A, R any] map[string]func(A) R

// MatchesWith calls the handler registered for the variant name of x and
// returns its result as Some. If no handler is registered for x's variant,
// the Fallback handler is called instead. If x is nil, is not Matchable or
// neither handler exists, the result is None. Missing handlers never are an
// error.
func MatchesWith[A, R any](x A, hs Handlers[A, R]) maybe.Maybe[R] {
	name, ok := NameOf(x)
	if !ok {
		tracer().Debugf("cannot match value %v of type %T", x, x)
		return maybe.None[R]()
	}
	if h, ok := hs[name]; ok && h != nil {
		return maybe.Some(h(x))
	}
	if h, ok := hs[Fallback]; ok && h != nil {
		return maybe.Some(h(x))
	}
	tracer().Debugf("no handler for variant %q", name)
	return maybe.None[R]()
}
