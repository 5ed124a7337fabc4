// Package attr provides the attribute set shared by nodes, links, graphs and
// the default sets held by a creation scope.
package attr

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// ErrEmptyKey indicates that an attribute set carries an empty attribute name.
var ErrEmptyKey = errors.New("attribute key is empty")

// Attributes maps attribute names to values (e.g., "color" -> "red").
// A nil Attributes is readable but must not be written to; use New.
type Attributes map[string]any

// New creates an Attributes from alternating key/value pairs.
// A trailing key without a value is stored with a nil value.
func New(kv ...any) Attributes {
	a := make(Attributes, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		a[key] = value
	}
	return a
}

// Set stores a single attribute and returns the set for method chaining.
func (a Attributes) Set(key string, value any) Attributes {
	a[key] = value
	return a
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Add merges other into a. Keys present in other overwrite keys in a;
// keys only present in a are kept.
func (a Attributes) Add(other Attributes) Attributes {
	maps.Copy(a, other)
	return a
}

// Clone returns an independent copy. Values are not deep-copied.
// Cloning a nil set returns an empty, writable set.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	maps.Copy(c, a)
	return c
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// All iterates over the attributes in key order.
func (a Attributes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range a.Keys() {
			if !yield(k, a[k]) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same keys with deeply equal values.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Validate checks that every attribute has a name.
func (a Attributes) Validate() error {
	if _, ok := a[""]; ok {
		return ErrEmptyKey
	}
	return nil
}
