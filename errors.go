package graphscope

import "github.com/zero-day-ai/graphscope/creation"

// Sentinel errors, re-exported from package creation for errors.Is checks.
var (
	// ErrNoActiveScope is returned by Get when no scope is open.
	ErrNoActiveScope = creation.ErrNoActiveScope

	// ErrDepthLimit is returned by Begin and Use when the configured
	// max_depth would be exceeded.
	ErrDepthLimit = creation.ErrDepthLimit

	// ErrNilStack is returned by Begin and Use when the context carries no stack.
	ErrNilStack = creation.ErrNilStack
)

// Error is the structured scope error type.
type Error = creation.Error
