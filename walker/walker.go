package walker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/portal"
)

// Sentinel errors for walking.
var (
	// ErrNilPuzzle is returned for a nil puzzle or board.
	ErrNilPuzzle = errors.New("walker: puzzle is nil")
)

// Step describes the walker after one cell move or turn.
type Step struct {
	Index    int            `json:"index"` // position in the move list
	Pos      grid.Point     `json:"pos"`
	Facing   grid.Direction `json:"facing"`
	Teleport bool           `json:"teleport,omitempty"`
	Turn     bool           `json:"turn,omitempty"`
}

// Option configures Walk.
type Option func(*Options)

// Options holds the walk settings.
type Options struct {
	// Ctx allows cancellation between moves.
	Ctx context.Context

	// Portals are tried before flat wraparound.
	Portals []portal.Portal

	// OnStep is called after every cell move and turn; an error aborts the walk.
	OnStep func(Step) error
}

// DefaultOptions returns a flat walk with no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(Step) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPortals sets the portals tried on every forward step.
func WithPortals(ps []portal.Portal) Option {
	return func(o *Options) { o.Portals = ps }
}

// WithOnStep registers a per-step callback.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result is the final state of a walk.
type Result struct {
	Pos      grid.Point     `json:"pos"`
	Facing   grid.Direction `json:"facing"`
	Password int            `json:"password"`

	// Visited maps each touched cell to the last heading it was left with.
	Visited map[grid.Point]grid.Direction `json:"-"`
}

// Password returns 1000·(row+1) + 4·(column+1) + facing number.
func Password(pos grid.Point, facing grid.Direction) int {
	return 1000*(pos.Y+1) + 4*(pos.X+1) + facing.Number()
}

// walk carries the mutable state of one run.
type walk struct {
	board  *grid.Grid
	opts   Options
	pos    grid.Point
	facing grid.Direction
	seen   map[grid.Point]grid.Direction
}

// Walk executes p.Moves on p.Grid.
// Returns ErrNilPuzzle, grid.ErrNoStart, a context error or an OnStep error.
// Complexity: O(Σ steps · (portals + W + H)).
func Walk(p *grid.Puzzle, opts ...Option) (*Result, error) {
	if p == nil || p.Grid == nil {
		return nil, ErrNilPuzzle
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, err := p.Grid.Start()
	if err != nil {
		return nil, err
	}

	w := &walk{
		board:  p.Grid,
		opts:   o,
		pos:    start,
		facing: grid.Right,
		seen:   map[grid.Point]grid.Direction{start: grid.Right},
	}
	for i, m := range p.Moves {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.apply(i, m); err != nil {
			return nil, fmt.Errorf("walker: move %d (%v): %w", i, m, err)
		}
	}

	return &Result{
		Pos:      w.pos,
		Facing:   w.facing,
		Password: Password(w.pos, w.facing),
		Visited:  w.seen,
	}, nil
}

// apply performs one move.
func (w *walk) apply(i int, m grid.Move) error {
	switch m.Kind {
	case grid.TurnLeft, grid.TurnRight:
		if m.Kind == grid.TurnLeft {
			w.facing = w.facing.TurnCCW()
		} else {
			w.facing = w.facing.TurnCW()
		}
		w.seen[w.pos] = w.facing
		return w.opts.OnStep(Step{Index: i, Pos: w.pos, Facing: w.facing, Turn: true})
	}

	for n := 0; n < m.Steps; n++ {
		next, facing, ported, ok := w.next()
		if !ok {
			break
		}
		w.pos, w.facing = next, facing
		w.seen[w.pos] = w.facing
		if err := w.opts.OnStep(Step{Index: i, Pos: w.pos, Facing: w.facing, Teleport: ported}); err != nil {
			return err
		}
	}
	return nil
}

// next returns the cell and heading after one forward step, or false when
// the step is blocked.
func (w *walk) next() (grid.Point, grid.Direction, bool, bool) {
	for _, p := range w.opts.Portals {
		if to, facing, ok := p.Teleport(w.pos, w.facing); ok {
			return to, facing, true, w.board.CanWalk(to)
		}
	}

	d, at := w.facing.Delta(), w.pos
	for {
		at = grid.Point{
			X: (at.X + d.X + w.board.Width) % w.board.Width,
			Y: (at.Y + d.Y + w.board.Height) % w.board.Height,
		}
		if !w.board.IsVoid(at) {
			break
		}
	}
	return at, w.facing, false, w.board.CanWalk(at)
}

// Render draws the board with every visited cell replaced by its heading.
func Render(g *grid.Grid, visited map[grid.Point]grid.Direction) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		var row strings.Builder
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if d, ok := visited[p]; ok {
				row.WriteString(d.String())
			} else {
				row.WriteString(g.At(p).String())
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
