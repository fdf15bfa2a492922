package guard

import (
	"encoding/json"
	"errors"
	"fmt"
)

// unexpectedMessage is the fixed message carried by the default substitute
// failure.
const unexpectedMessage = "Unexpected error"

// UnexpectedError is the built-in failure kind substituted for failures
// outside the expected set when no handler is supplied.
// It is private-field and immutable; construct it with NewUnexpectedError.
//
// The intercepted failure is attached as the cause for diagnostic purposes
// and is reachable through errors.Unwrap, but it is never re-returned as-is.
type UnexpectedError struct {
	message string
	cause   error
}

// NewUnexpectedError creates an UnexpectedError with the given message.
//
// Example:
//
//	err := guard.NewUnexpectedError("payment backend misbehaved")
func NewUnexpectedError(message string) *UnexpectedError {
	return &UnexpectedError{message: message}
}

// Error returns the string representation of the error.
// Format: "message" or "message: cause" if a cause is present.
func (e *UnexpectedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message exactly as constructed, without the cause.
func (e *UnexpectedError) Message() string {
	return e.message
}

// Unwrap returns the intercepted failure for standard library compatibility.
// Returns nil if this error was constructed without a cause.
func (e *UnexpectedError) Unwrap() error {
	return e.cause
}

// MarshalJSON implements json.Marshaler so UnexpectedError instances can be
// marshaled directly with json.Marshal.
//
// The cause is rendered as a string rather than serialized structurally, to
// avoid leaking arbitrary wrapped values into API responses.
//
// Example:
//
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"message":"Unexpected error","cause":"strconv.Atoi: ..."}
func (e *UnexpectedError) MarshalJSON() ([]byte, error) {
	payload := struct {
		Message string `json:"message"`
		Cause   string `json:"cause,omitempty"`
	}{Message: e.message}
	if e.cause != nil {
		payload.Cause = e.cause.Error()
	}
	return json.Marshal(payload)
}

// IsUnexpected reports whether err's chain contains an UnexpectedError.
// Returns false if err is nil.
//
// Example:
//
//	if guard.IsUnexpected(err) {
//	    // The guard normalized an undeclared failure
//	}
func IsUnexpected(err error) bool {
	var unexpected *UnexpectedError
	return errors.As(err, &unexpected)
}
