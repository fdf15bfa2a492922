// Package guard provides a reusable failure-classification boundary.
// A guard declares which failure kinds a call site expects; expected failures
// pass through unchanged while everything else is normalized or handled.
package guard

import "errors"

// matcher reports whether an error belongs to one expected failure kind.
type matcher func(error) bool

// Guard classifies failures from a guarded operation against a declared
// set of expected failure kinds.
//
// A Guard is immutable once constructed and holds no mutable state across
// invocations, so a single Guard may be shared freely between goroutines.
// It is consulted exactly once per guarded invocation, on failure; when the
// operation succeeds the guard is fully transparent.
type Guard struct {
	expected      []matcher
	handler       Handler
	recoverPanics bool
}

// Option configures a Guard during construction.
type Option func(*Guard)

// Expect declares sentinel error values as expected failure kinds.
// Matching uses errors.Is, so any error whose chain contains one of the
// targets is expected.
//
// Example:
//
//	g := guard.New(guard.Expect(sql.ErrNoRows, io.EOF))
func Expect(targets ...error) Option {
	return func(g *Guard) {
		for _, target := range targets {
			target := target
			g.expected = append(g.expected, func(err error) bool {
				return errors.Is(err, target)
			})
		}
	}
}

// ExpectType declares an error type as an expected failure kind.
// Matching uses errors.As, so any error whose chain contains a value of
// type T is expected.
//
// Example:
//
//	g := guard.New(guard.ExpectType[*strconv.NumError]())
func ExpectType[T error]() Option {
	return func(g *Guard) {
		g.expected = append(g.expected, func(err error) bool {
			var target T
			return errors.As(err, &target)
		})
	}
}

// ExpectMatch declares a predicate as an expected failure kind.
// The predicate receives the raw failure; it is responsible for its own
// chain traversal if it needs any.
//
// Example:
//
//	g := guard.New(guard.ExpectMatch(os.IsTimeout))
func ExpectMatch(fn func(error) bool) Option {
	return func(g *Guard) {
		g.expected = append(g.expected, fn)
	}
}

// OnUnexpected sets the handler invoked for failures outside the expected
// set. Without this option, unexpected failures are replaced with
// UnexpectedError. See Handler for the contract.
func OnUnexpected(h Handler) Option {
	return func(g *Guard) {
		g.handler = h
	}
}

// RecoverPanics makes the guard treat a panic in the guarded operation as
// a failure: the panic value is converted to an error and classified like
// any other. Without this option panics propagate untouched.
func RecoverPanics() Option {
	return func(g *Guard) {
		g.recoverPanics = true
	}
}

// New constructs a Guard from the given options.
//
// A Guard with no Expect options treats every failure as unexpected; a
// Guard with no OnUnexpected option substitutes UnexpectedError for
// unexpected failures.
//
// Example:
//
//	g := guard.New(
//	    guard.Expect(ErrDivideByZero),
//	    guard.OnUnexpected(func(err error, call guard.Call) (any, error) {
//	        return -1, nil
//	    }),
//	)
func New(opts ...Option) *Guard {
	g := &Guard{handler: defaultHandler}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
