package model

// Label identifies a node across resolution calls. Two labels are the same
// node exactly when they are equal.
type Label string

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Endpoint is anything a link can start from or point to.
type Endpoint interface {
	// EndpointLabel returns the label of the node behind the endpoint.
	EndpointLabel() Label
}
