package creation

import (
	"io"
	"log/slog"
	"testing"
)

func newTestStack(t *testing.T, opts ...Option) *Stack {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStack(append([]Option{WithLogger(logger)}, opts...)...)
}
