package guard

import "fmt"

// Do runs fn under the guard and classifies its failure, if any.
// It is the immediate-application form of Func.
//
// Example:
//
//	cfg, err := guard.Do(g, loadConfig)
func Do[T any](g *Guard, fn func() (T, error)) (T, error) {
	return run(g, fn, Call{})
}

// Func wraps a zero-argument function so that expected failures pass
// through unchanged and unexpected failures are handled at the guard
// boundary. The wrapped function has the same signature as fn.
//
// Example:
//
//	load := guard.Func(g, loadConfig)
//	cfg, err := load()
func Func[T any](g *Guard, fn func() (T, error)) func() (T, error) {
	return func() (T, error) {
		return run(g, fn, Call{})
	}
}

// Func1 wraps a one-argument function. The handler receives the original
// argument through Call.Args.
func Func1[A, T any](g *Guard, fn func(A) (T, error)) func(A) (T, error) {
	return func(a A) (T, error) {
		return run(g, func() (T, error) { return fn(a) }, Call{Args: []any{a}})
	}
}

// Func2 wraps a two-argument function. The handler receives the original
// arguments through Call.Args.
//
// Functions of higher arity are wrapped by closing over the extra
// arguments, or with Do at the call site.
//
// Example:
//
//	divide := guard.Func2(g, rawDivide)
//	q, err := divide("4", "2")
func Func2[A, B, T any](g *Guard, fn func(A, B) (T, error)) func(A, B) (T, error) {
	return func(a A, b B) (T, error) {
		return run(g, func() (T, error) { return fn(a, b) }, Call{Args: []any{a, b}})
	}
}

// run is the decorator-form core: invoke, classify once, route.
func run[T any](g *Guard, fn func() (T, error), call Call) (T, error) {
	value, err := invoke(g, fn)
	if err == nil {
		return value, nil
	}
	if g.Classify(err).IsExpected() {
		return value, err
	}

	substitute, herr := g.resolve(err, call)
	if herr != nil {
		var zero T
		return zero, herr
	}
	return substituteAs[T](substitute)
}

// invoke executes fn, converting a panic to a failure when the guard has
// panic recovery enabled.
func invoke[T any](g *Guard, fn func() (T, error)) (value T, err error) {
	if g.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()
	}
	value, err = fn()
	return value, err
}

// substituteAs converts a handler substitute into the wrapped function's
// result type. A nil substitute means the zero value. A substitute of the
// wrong type must not escape as a panic from the failure path, so it is
// reported as an UnexpectedError instead.
func substituteAs[T any](substitute any) (T, error) {
	var zero T
	if substitute == nil {
		return zero, nil
	}
	value, ok := substitute.(T)
	if !ok {
		return zero, &UnexpectedError{
			message: unexpectedMessage,
			cause:   fmt.Errorf("handler substitute of type %T is not assignable to the result type", substitute),
		}
	}
	return value, nil
}
