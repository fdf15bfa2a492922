// Package guard provides failure classification for risky operations.
//
// A Guard wraps an operation so that a declared set of expected failure
// kinds propagates unchanged, while every other failure is intercepted at
// the guard boundary and either replaced with UnexpectedError or routed to
// a caller-supplied handler. The result is a narrow, predictable failure
// surface: callers see exactly the errors they declared, plus one
// well-known substitute for everything else.
//
// # Features
//
//   - Declarative expected-failure sets (sentinel, type, or predicate matching)
//   - Unexpected failures terminated at the guard boundary, never leaked raw
//   - Caller-supplied handlers that substitute a value or replace the failure
//   - Decorator form (wrap a function) and scoped-block form (defer-based)
//   - Optional panic recovery for guarded operations
//   - Zero dependencies (Layer 0 library)
//
// # Design Principles
//
//   - Standard library compatibility (matching via errors.Is and errors.As)
//   - Immutability (a Guard is immutable once created and safe for concurrent use)
//   - Transparency (a successful operation passes through completely untouched)
//   - Simplicity (minimal API surface, easy to use correctly)
//
// # Quick Start
//
// Constructing a guard:
//
//	g := guard.New(guard.Expect(ErrDivideByZero))
//
// Decorator form, wrapping a function once:
//
//	divide := guard.Func2(g, rawDivide)
//
//	q, err := divide("4", "2") // 2, nil
//	q, err = divide("4", "0")  // ErrDivideByZero passes through unchanged
//	q, err = divide("a", "b")  // *UnexpectedError replaces the parse failure
//
// Scoped-block form, guarding an inline sequence:
//
//	func transfer(from, to string) (err error) {
//	    defer g.Capture(&err)
//
//	    if err := debit(from); err != nil {
//	        return err
//	    }
//	    return credit(to)
//	}
//
// # Expected Failures
//
// Expected failure kinds are declared at construction and matched against
// the whole error chain, so a wrapped expected failure is still expected:
//
//	g := guard.New(
//	    guard.Expect(sql.ErrNoRows),      // sentinel, via errors.Is
//	    guard.ExpectType[*net.OpError](), // type, via errors.As
//	    guard.ExpectMatch(os.IsTimeout),  // arbitrary predicate
//	)
//
// Expected failures are never touched: the guard re-returns the identical
// error value, chain intact.
//
// # Unexpected Failures
//
// Anything outside the expected set is routed to the handler supplied with
// OnUnexpected. The handler receives the failure and, in the decorator
// form, the original call arguments. It either returns a substitute result
// or returns a replacement error:
//
//	g := guard.New(
//	    guard.Expect(ErrDivideByZero),
//	    guard.OnUnexpected(func(err error, call guard.Call) (any, error) {
//	        return -1, nil // substitute result
//	    }),
//	)
//
// With no handler, the guard returns UnexpectedError with the message
// "Unexpected error" and the original failure attached as the cause,
// reachable through errors.Unwrap.
//
// # Panics
//
// By default the guard classifies errors only; a panic in the guarded
// operation propagates untouched. RecoverPanics opts into treating panics
// as failures, converting them to errors before classification.
package guard
