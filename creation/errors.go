package creation

import (
	"errors"
	"fmt"
)

// Sentinel errors for scope handling.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNoActiveScope indicates that an operation required an open scope
	// but the stack was empty. Only Stack.Get returns it; resolve calls fall
	// back to unscoped construction instead.
	ErrNoActiveScope = errors.New("no active creation scope")

	// ErrDepthLimit indicates that opening a scope would exceed the
	// configured maximum nesting depth.
	ErrDepthLimit = errors.New("creation scope depth limit exceeded")
)

// Error kinds categorize scope errors.
const (
	// KindNoActiveScope marks a missing required scope.
	KindNoActiveScope = "no_active_scope"

	// KindDepthLimit marks a rejected Begin.
	KindDepthLimit = "depth_limit"

	// KindScopeBody marks a failure returned by the body of a scope.
	KindScopeBody = "scope_body"

	// KindCleanup marks a failure while closing a scope.
	KindCleanup = "cleanup"
)

// Error is a structured scope error. Err is the primary failure. Cleanup
// holds a failure raised while closing the scope after Err occurred; it is
// never allowed to replace Err.
type Error struct {
	// Op is the operation that failed (e.g., "Stack.Get", "creation.Use").
	Op string

	// Kind categorizes the error (e.g., KindScopeBody).
	Kind string

	// Err is the underlying error.
	Err error

	// Cleanup is a secondary error from closing the scope (optional).
	Cleanup error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("creation: %s (%s)", e.Op, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Cleanup != nil {
		msg += " [cleanup: " + e.Cleanup.Error() + "]"
	}
	return msg
}

// Unwrap returns the primary error followed by the cleanup error, so that
// errors.Is and errors.As reach both.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cleanup != nil {
		errs = append(errs, e.Cleanup)
	}
	return errs
}

// Is matches another *Error by Kind, and by Op when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind == "" || t.Kind != e.Kind {
		return false
	}
	return t.Op == "" || t.Op == e.Op
}

func newNoActiveScopeError(op string) *Error {
	return &Error{Op: op, Kind: KindNoActiveScope, Err: ErrNoActiveScope}
}

func newNilStackError(op string) *Error {
	return &Error{Op: op, Kind: KindNoActiveScope, Err: ErrNilStack}
}

func newDepthLimitError(op string, limit int) *Error {
	return &Error{
		Op:   op,
		Kind: KindDepthLimit,
		Err:  fmt.Errorf("%w: max depth %d", ErrDepthLimit, limit),
	}
}

func newScopeBodyError(op string, err, cleanup error) *Error {
	return &Error{Op: op, Kind: KindScopeBody, Err: err, Cleanup: cleanup}
}

func newCleanupError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindCleanup, Err: err}
}
