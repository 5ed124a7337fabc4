package creation

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/zero-day-ai/graphscope/attr"
	"github.com/zero-day-ai/graphscope/config"
	"github.com/zero-day-ai/graphscope/model"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// ErrNilStack indicates that a scope was requested from a context that
// carries no Stack.
var ErrNilStack = errors.New("no creation stack in context")

// Graph is what a scope needs from its enclosing graph.
// *model.MutableGraph implements it.
type Graph interface {
	// AddNode registers a node created in the scope.
	AddNode(n *model.MutableNode)

	// AddSubgraph registers a subgraph created in the scope.
	AddSubgraph(g *model.MutableGraph)

	// MergeAttrs merges the scope's graph defaults when the scope closes.
	MergeAttrs(attrs attr.Attributes) error
}

// Stack is a LIFO stack of creation frames owned by a single call path.
// A Stack is not safe for concurrent use. A nil *Stack behaves as an empty
// stack for every read and resolve operation.
type Stack struct {
	frames []*Frame
	cfg    *config.Config
	logger *slog.Logger
	tracer trace.Tracer
	instr  *instruments
}

// NewStack creates an empty stack.
func NewStack(opts ...Option) *Stack {
	c := &stackConfig{}
	for _, opt := range opts {
		opt(c)
	}

	logger := c.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.cfg.GetLogLevel()}))
	}

	instr, err := newInstruments(selectMeter(c))
	if err != nil {
		logger.Warn("failed to create metric instruments, metrics disabled", "error", err)
		instr = noopInstruments()
	}

	return &Stack{
		cfg:    c.cfg,
		logger: logger,
		tracer: selectTracer(c),
		instr:  instr,
	}
}

// Begin pushes a new frame bound to g and returns it. g may be nil for a
// detached scope. Begin fails only when a configured depth limit is reached.
func (s *Stack) Begin(g Graph) (*Frame, error) {
	if s == nil {
		return nil, newNilStackError("Stack.Begin")
	}
	if limit := s.cfg.GetMaxDepth(); limit > 0 && len(s.frames) >= limit {
		return nil, newDepthLimitError("Stack.Begin", limit)
	}
	if mg, ok := g.(*model.MutableGraph); ok && mg == nil {
		g = nil
	}

	f := &Frame{
		id:         uuid.New().String(),
		depth:      len(s.frames) + 1,
		graph:      g,
		nodeAttrs:  s.cfg.NodeDefaults(),
		linkAttrs:  s.cfg.LinkDefaults(),
		graphAttrs: s.cfg.GraphDefaults(),
		nodes:      make(map[model.Label]model.Node),
		mutIndex:   make(map[model.Label]int),
	}
	s.frames = append(s.frames, f)
	s.instr.scopeOpened(context.Background())

	s.log().Debug("creation scope opened",
		"frame_id", f.id,
		"depth", f.depth,
		"graph_id", graphID(g),
	)
	return f, nil
}

// End pops the top frame. If the frame is bound to a graph, its graph
// defaults are merged into that graph. Ending an empty stack is a no-op.
//
// The frame is popped even when the merge fails; the merge error is returned.
func (s *Stack) End() error {
	if s == nil || len(s.frames) == 0 {
		return nil
	}

	top := len(s.frames) - 1
	f := s.frames[top]
	s.frames[top] = nil
	s.frames = s.frames[:top]
	s.instr.scopeClosed(context.Background())

	if f.graph != nil {
		if err := f.graph.MergeAttrs(f.graphAttrs); err != nil {
			s.log().Warn("failed to merge graph defaults on scope close",
				"frame_id", f.id,
				"graph_id", graphID(f.graph),
				"error", err,
			)
			return newCleanupError("Stack.End", err)
		}
	}

	s.log().Debug("creation scope closed",
		"frame_id", f.id,
		"depth", f.depth,
		"graph_id", graphID(f.graph),
		"mutable_nodes", len(f.mutNodes),
	)
	return nil
}

// Current returns the top frame, if any.
func (s *Stack) Current() (*Frame, bool) {
	if s == nil || len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// Get returns the top frame or an error wrapping ErrNoActiveScope.
func (s *Stack) Get() (*Frame, error) {
	f, ok := s.Current()
	if !ok {
		return nil, newNoActiveScopeError("Stack.Get")
	}
	return f, nil
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// endThrough pops frames until the stack is back below f's depth. Frames
// left open above f are closed first; frames below f are never touched, even
// when f was already popped.
func (s *Stack) endThrough(f *Frame) error {
	var errs []error
	for s.Depth() >= f.depth {
		top, _ := s.Current()
		if top != f {
			s.log().Warn("closing scope left open inside an enclosing scope",
				"frame_id", top.id,
				"depth", top.depth,
			)
		}
		if err := s.End(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func graphID(g Graph) string {
	switch v := g.(type) {
	case nil:
		return ""
	case *model.MutableGraph:
		return v.ID
	default:
		return "external"
	}
}

func (s *Stack) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

func (s *Stack) spanTracer() trace.Tracer {
	if s.tracer == nil {
		return tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
	return s.tracer
}
