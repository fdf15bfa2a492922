package guard

// Classification indicates whether a failure belongs to the declared
// expected set. Expected failures pass through the guard unchanged;
// unexpected failures are terminated at the guard boundary.
type Classification string

const (
	// ClassificationExpected indicates a failure the call site declared as
	// an acceptable, pass-through outcome.
	ClassificationExpected Classification = "EXPECTED"

	// ClassificationUnexpected indicates any other failure; it is routed to
	// the handler or replaced with UnexpectedError.
	ClassificationUnexpected Classification = "UNEXPECTED"
)

// IsExpected returns true if the classification allows pass-through.
func (c Classification) IsExpected() bool {
	return c == ClassificationExpected
}

// Classify reports how the guard treats err.
//
// A nil error classifies as expected: the guard takes no action on a
// successful invocation. Matchers are consulted in declaration order and
// the first match wins.
//
// Classify is the membership predicate the guard applies internally; it is
// exported for callers that need the classification without the routing.
func (g *Guard) Classify(err error) Classification {
	if err == nil {
		return ClassificationExpected
	}
	for _, match := range g.expected {
		if match(err) {
			return ClassificationExpected
		}
	}
	return ClassificationUnexpected
}
