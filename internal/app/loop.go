package app

import (
	"context"
	"fmt"

	"github.com/hylla/tado/internal/domain"
)

// defaultEventBuffer sizes the producer/consumer key queue.
const defaultEventBuffer = 16

// Loop drives the state machine from a key channel into a renderer.
type Loop struct {
	state  *State
	logger Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopLogger sets the loop logger.
func WithLoopLogger(logger Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop constructs a loop that owns state exclusively while running.
func NewLoop(state *State, opts ...LoopOption) *Loop {
	l := &Loop{state: state, logger: nopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// State returns the loop state.
func (l *Loop) State() *State {
	return l.state
}

// Run renders the initial frame, then handles one event at a time until quit,
// end of input, or context cancellation. Only renderer failures are returned.
func (l *Loop) Run(ctx context.Context, events <-chan domain.Key, sink Renderer) error {
	if l.state == nil {
		return ErrNilState
	}
	if sink == nil {
		return ErrNilRenderer
	}
	if err := l.render(sink); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("run loop cancelled", "state", l.state.Summary())
			return nil
		case key, ok := <-events:
			if !ok {
				l.logger.Info("input closed", "state", l.state.Summary())
				return nil
			}
			out := HandleKey(l.state, key)
			l.logger.Debug("key handled", "key", key.String(), "command", string(out.Command), "changed", out.Changed)
			if out.Quit {
				l.logger.Info("quit requested", "state", l.state.Summary())
				return nil
			}
			if out.Redraw {
				if err := sink.Clear(); err != nil {
					return fmt.Errorf("clear screen: %w", err)
				}
			}
			if err := l.render(sink); err != nil {
				return err
			}
		}
	}
}

// render projects and paints the current state.
func (l *Loop) render(sink Renderer) error {
	if err := sink.Render(Project(l.state)); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}

// Listen starts the single background producer that reads keys from src and
// queues them. The channel closes on the first read error (including io.EOF)
// or when ctx is cancelled.
func Listen(ctx context.Context, src KeySource, buffer int) <-chan domain.Key {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	out := make(chan domain.Key, buffer)
	go func() {
		defer close(out)
		for {
			key, err := src.ReadKey()
			if err != nil {
				return
			}
			select {
			case out <- key:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
