package morph

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Option is a functional option for configuring a Tree.
type Option func(*Tree) error

// WithLogger sets the logger used for per-pass debug output.
// Default is a logger that discards everything.
func WithLogger(l *log.Logger) Option {
	return func(t *Tree) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		t.logger = l
		return nil
	}
}

// WithSubLayout replaces per-node Content with a single content sizer for
// the whole tree. sub receives sizes in the frame of each node's parent.
func WithSubLayout(sub SubLayout) Option {
	return func(t *Tree) error {
		if sub == nil {
			return fmt.Errorf("sublayout must not be nil")
		}
		t.sub = sub
		return nil
	}
}

// WithCapacity preallocates storage for n nodes.
func WithCapacity(n int) Option {
	return func(t *Tree) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative")
		}
		t.nodes = make([]node, 0, n)
		return nil
	}
}
