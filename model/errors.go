package model

import "errors"

// Sentinel errors for model validation.
var (
	// ErrEmptyLabel indicates a node without a label.
	ErrEmptyLabel = errors.New("node label is required")

	// ErrMissingEndpoint indicates a link without a source or a target.
	ErrMissingEndpoint = errors.New("link endpoint is required")
)
