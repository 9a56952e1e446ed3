package colorer

import (
	"fmt"

	"github.com/katalvlaran/cubenet/facenet"
)

// Colorize assigns a cube vertex color to every corner of n.
// Returns ErrNilNet, ErrOptionViolation, ErrBoundary, ErrColorOverflow,
// ErrColorsExhausted or ErrStuck.
// Complexity: O(E²) for E boundary edges, which is constant for cube nets.
func Colorize(n *facenet.Net, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := newState(n)
	if err := s.traceBoundary(); err != nil {
		return nil, err
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	o.OnPhase(s.report(PhaseInitial, 0))

	for step := 1; step <= o.MaxSteps; step++ {
		out, err := s.step()
		if err != nil {
			return nil, err
		}
		switch out := out.(type) {
		case resolved:
			return &Result{Colors: s.color, Steps: step - 1}, nil
		case stuck:
			return nil, fmt.Errorf("%w: %s", ErrStuck, out.reason)
		case progress:
			o.OnPhase(s.report(out.phase, step))
		}
	}
	return nil, fmt.Errorf("%w: no resolution within %d steps", ErrStuck, o.MaxSteps)
}
