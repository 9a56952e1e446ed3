package solver

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubenet/colorer"
	"github.com/katalvlaran/cubenet/facenet"
	"github.com/katalvlaran/cubenet/fold"
	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/portal"
	"github.com/katalvlaran/cubenet/walker"
)

// Derivation is the outcome of portal synthesis for one board.
type Derivation struct {
	Method  Method          `json:"method"`
	Side    int             `json:"side,omitempty"`
	Layout  []string        `json:"layout,omitempty"`
	Portals []portal.Portal `json:"portals"`
}

// Solution is a derivation plus the walk it drove.
type Solution struct {
	Derivation
	Walk *walker.Result `json:"walk"`
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Derive extracts the net of g and synthesizes its portals. MethodFlat
// returns an empty set without looking at the net.
func Derive(g *grid.Grid, opts ...Option) (*Derivation, error) {
	if g == nil {
		return nil, ErrNilInput
	}
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	return derive(g, o)
}

func derive(g *grid.Grid, o Options) (*Derivation, error) {
	logger := o.Logger.WithField("method", o.Method)
	if o.Method == MethodFlat {
		logger.Debug("flat wraparound, no portals")
		return &Derivation{Method: MethodFlat}, nil
	}

	var extract []facenet.Option
	if o.Strict {
		extract = append(extract, facenet.WithStrict())
	}
	n, err := facenet.Extract(g, extract...)
	if err != nil {
		return nil, err
	}
	logger = logger.WithFields(log.Fields{"faces": len(n.Faces), "side": n.Side})
	logger.Debug("net extracted")

	ps, err := synthesize(n, o.Method)
	if err != nil {
		return nil, err
	}
	if o.CrossCheck {
		other := MethodColor
		if o.Method == MethodColor {
			other = MethodAffine
		}
		alt, err := synthesize(n, other)
		if err != nil {
			return nil, fmt.Errorf("solver: cross-check with %v: %w", other, err)
		}
		if !portal.SameSet(ps, alt) {
			return nil, fmt.Errorf("%w (side %d)", ErrMethodsDisagree, n.Side)
		}
		logger.WithField("against", other).Debug("cross-check passed")
	}
	logger.WithField("portals", len(ps)).Debug("portals derived")

	return &Derivation{Method: o.Method, Side: n.Side, Layout: n.Layout(), Portals: ps}, nil
}

// synthesize matches the boundary edges of n with the keys of method m.
func synthesize(n *facenet.Net, m Method) ([]portal.Portal, error) {
	switch m {
	case MethodAffine:
		res, err := fold.Fold(n)
		if err != nil {
			return nil, err
		}
		return portal.Match(n, res.Key)
	case MethodColor:
		res, err := colorer.Colorize(n)
		if err != nil {
			return nil, err
		}
		return portal.Match(n, res.Key)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// Portals is Derive returning the portal set only.
func Portals(g *grid.Grid, opts ...Option) ([]portal.Portal, error) {
	d, err := Derive(g, opts...)
	if err != nil {
		return nil, err
	}
	return d.Portals, nil
}

// Solve derives the portals of p.Grid and walks p.Moves through them.
func Solve(p *grid.Puzzle, opts ...Option) (*Solution, error) {
	if p == nil || p.Grid == nil {
		return nil, ErrNilInput
	}
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	d, err := derive(p.Grid, o)
	if err != nil {
		return nil, err
	}

	walk := append([]walker.Option{walker.WithPortals(d.Portals)}, o.Walk...)
	res, err := walker.Walk(p, walk...)
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(log.Fields{
		"method":   o.Method,
		"moves":    len(p.Moves),
		"password": res.Password,
	}).Debug("walk finished")

	return &Solution{Derivation: *d, Walk: res}, nil
}
