package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zero-day-ai/graphscope/attr"
)

// Link connects two endpoints. Every link gets its own ID, so two links
// between the same endpoints are still distinct.
type Link struct {
	// ID is the unique link identifier.
	ID string

	// From is the source endpoint.
	From Endpoint

	// To is the target endpoint.
	To Endpoint

	// Attrs holds the link attributes (e.g., "color", "label").
	Attrs attr.Attributes
}

// NewLink creates a link between from and to with an empty attribute set.
func NewLink(from, to Endpoint) *Link {
	return &Link{
		ID:    uuid.New().String(),
		From:  from,
		To:    to,
		Attrs: attr.New(),
	}
}

// With merges attrs into the link attributes and returns the link for chaining.
func (l *Link) With(attrs attr.Attributes) *Link {
	if l.Attrs == nil {
		l.Attrs = attr.New()
	}
	l.Attrs.Add(attrs)
	return l
}

// String returns "from -> to".
func (l *Link) String() string {
	return fmt.Sprintf("%s -> %s", endpointName(l.From), endpointName(l.To))
}

// Validate checks that both endpoints are set.
func (l *Link) Validate() error {
	if l.From == nil {
		return fmt.Errorf("%w: from", ErrMissingEndpoint)
	}
	if l.To == nil {
		return fmt.Errorf("%w: to", ErrMissingEndpoint)
	}
	return nil
}

func endpointName(e Endpoint) string {
	if e == nil {
		return "<nil>"
	}
	return e.EndpointLabel().String()
}
