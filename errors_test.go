package graphscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zero-day-ai/graphscope"
	"github.com/zero-day-ai/graphscope/creation"
)

// TestSentinelErrors verifies that the re-exported sentinels are the creation ones.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"ErrNoActiveScope", graphscope.ErrNoActiveScope, creation.ErrNoActiveScope},
		{"ErrDepthLimit", graphscope.ErrDepthLimit, creation.ErrDepthLimit},
		{"ErrNilStack", graphscope.ErrNilStack, creation.ErrNilStack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, tt.err)
		})
	}
}
