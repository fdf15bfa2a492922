package guard

import "fmt"

// Capture is the scoped-block form of the guard. Defer it at block entry
// with a pointer to the function's named error return; on exit it inspects
// the failure, if any:
//
//   - a nil error is left alone (normal exit)
//   - an expected failure propagates unchanged
//   - an unexpected failure is routed to the handler; a handler substitute
//     value is discarded, a nil handler error suppresses the failure, and a
//     handler error replaces it
//   - with no handler, the failure is replaced with UnexpectedError
//
// Capture must be deferred directly for panic recovery to take effect:
//
//	func transfer(from, to string) (err error) {
//	    defer g.Capture(&err)
//
//	    if err := debit(from); err != nil {
//	        return err
//	    }
//	    return credit(to)
//	}
func (g *Guard) Capture(errp *error) {
	if errp == nil {
		return
	}
	if g.recoverPanics {
		if r := recover(); r != nil {
			*errp = fmt.Errorf("panic recovered: %v", r)
		}
	}
	err := *errp
	if err == nil || g.Classify(err).IsExpected() {
		return
	}
	_, herr := g.resolve(err, Call{})
	*errp = herr
}

// Run executes fn under the guard with scoped-block semantics: expected
// failures pass through, unexpected failures are handled with any handler
// substitute discarded. With panic recovery enabled, a panic in fn is
// converted to a failure and classified like any other.
//
// Example:
//
//	err := g.Run(func() error {
//	    return store.Flush()
//	})
func (g *Guard) Run(fn func() error) error {
	err := g.invokeBlock(fn)
	if err == nil || g.Classify(err).IsExpected() {
		return err
	}
	_, herr := g.resolve(err, Call{})
	return herr
}

func (g *Guard) invokeBlock(fn func() error) (err error) {
	if g.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()
	}
	return fn()
}
