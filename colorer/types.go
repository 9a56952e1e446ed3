package colorer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubenet/facenet"
)

// Sentinel errors for colouring.
var (
	// ErrNilNet is returned for a nil net.
	ErrNilNet = errors.New("colorer: net is nil")

	// ErrBoundary is returned when the net outline is not one cycle of
	// fourteen edges.
	ErrBoundary = errors.New("colorer: net boundary is not a single cycle of 14 edges")

	// ErrColorOverflow is returned when a color would gather more than
	// three faces.
	ErrColorOverflow = errors.New("colorer: color degree exceeds 3")

	// ErrColorsExhausted is returned when a ninth color would be needed.
	ErrColorsExhausted = errors.New("colorer: more than 8 colors needed")

	// ErrStuck is returned when no phase makes progress or the step bound
	// is reached.
	ErrStuck = errors.New("colorer: colouring is stuck")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("colorer: invalid option supplied")
)

// MaxColors is the number of cube vertices.
const MaxColors = 8

// VertexDegree is the number of faces meeting at a cube vertex.
const VertexDegree = 3

// boundaryLen is the outline length of a six-face net without holes.
const boundaryLen = 2*facenet.FaceCount + 2

// Color labels a cube vertex. Gray marks a corner not yet resolved.
type Color int

// Gray is the unresolved color.
const Gray Color = -1

// String returns "gray" or the letter of c.
func (c Color) String() string {
	if c < 0 || c >= MaxColors {
		return "gray"
	}
	return string(rune('A' + c))
}

// Phase names a step of the colouring run.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseDiagonal
	PhaseDistant
	PhaseLeftover
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseDiagonal:
		return "diagonal"
	case PhaseDistant:
		return "distant"
	case PhaseLeftover:
		return "leftover"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Report describes the state after one phase step.
type Report struct {
	Phase Phase
	Step  int

	// Degrees[c] is the face degree gathered by color c.
	Degrees [MaxColors]int

	// Gray counts the corners still unresolved.
	Gray int

	// Cycle is the number of boundary edges not yet glued.
	Cycle int
}

// Option configures a colouring run.
type Option func(*Options)

// Options holds the run settings.
type Options struct {
	// MaxSteps bounds the number of phase steps after the initial pass.
	MaxSteps int

	// OnPhase is called after the initial pass and after every step.
	OnPhase func(Report)

	err error
}

// DefaultOptions returns a step bound large enough for any cube net.
func DefaultOptions() Options {
	return Options{
		MaxSteps: boundaryLen + 2,
		OnPhase:  func(Report) {},
	}
}

// WithMaxSteps sets the step bound; n must be positive.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnPhase registers a progress callback.
func WithOnPhase(fn func(Report)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// Result holds the resolved corner colors of a net.
type Result struct {
	// Colors[c] is the cube vertex of net corner c.
	Colors []Color

	// Steps is the number of phase steps taken after the initial pass.
	Steps int
}

// Key returns the color of corner c. It is the matching key used to pair
// boundary edges.
func (r *Result) Key(c facenet.CornerID) Color {
	return r.Colors[c]
}

// outcome is the result of one phase step: progress, resolved or stuck.
type outcome interface{ isOutcome() }

type progress struct{ phase Phase }

type resolved struct{}

type stuck struct{ reason string }

func (progress) isOutcome() {}
func (resolved) isOutcome() {}
func (stuck) isOutcome()    {}
