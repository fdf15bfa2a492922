package guard

// Call describes the guarded invocation whose failure is being handled.
type Call struct {
	// Args holds the original arguments of the wrapped call in the
	// decorator form. It is empty in the scoped-block form, where no call
	// arguments exist.
	Args []any
}

// Handler responds to a failure outside the expected set.
//
// Returning a nil error resolves the failure: in the decorator form the
// returned value becomes the guarded call's result, and in the scoped-block
// form the value is discarded and the failure is suppressed. Returning a
// non-nil error replaces the original failure, which never escapes the
// guard in its original form.
//
// The same handler serves both forms; call.Args distinguishes them when it
// matters.
type Handler func(err error, call Call) (any, error)

// defaultHandler replaces the failure with UnexpectedError, attaching the
// original as the cause.
func defaultHandler(err error, _ Call) (any, error) {
	return nil, &UnexpectedError{message: unexpectedMessage, cause: err}
}

// resolve routes an unexpected failure to the guard's handler.
// A zero-value Guard has no handler and falls back to the default.
func (g *Guard) resolve(err error, call Call) (any, error) {
	if g.handler == nil {
		return defaultHandler(err, call)
	}
	return g.handler(err, call)
}
