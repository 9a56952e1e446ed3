package colorer

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cubenet/facenet"
)

// state is the mutable bookkeeping of one colouring run.
type state struct {
	net     *facenet.Net
	color   []Color
	members [MaxColors]mapset.Set[facenet.CornerID]
	degree  [MaxColors]int

	// cycle lists the corners of the unglued boundary; the edge at
	// position i runs from cycle[i] to cycle[i+1].
	cycle []facenet.CornerID
}

func newState(n *facenet.Net) *state {
	s := &state{
		net:   n,
		color: make([]Color, len(n.Corners)),
	}
	for i := range s.color {
		s.color[i] = Gray
	}
	for c := range s.members {
		s.members[c] = mapset.New[facenet.CornerID]()
	}
	return s
}

// traceBoundary fills s.cycle by following boundary edges head to tail.
func (s *state) traceBoundary() error {
	boundary := s.net.BoundaryEdges()
	if len(boundary) != boundaryLen {
		return fmt.Errorf("%w: %d boundary edges", ErrBoundary, len(boundary))
	}
	next := make(map[facenet.CornerID]facenet.CornerID, len(boundary))
	for _, id := range boundary {
		e := s.net.Edges[id]
		if _, dup := next[e.From]; dup {
			return fmt.Errorf("%w: corner %v starts two boundary edges",
				ErrBoundary, s.net.Corners[e.From].Pos)
		}
		next[e.From] = e.To
	}

	start := s.net.Edges[boundary[0]].From
	seen := mapset.New[facenet.CornerID]()
	for c := start; !seen.Has(c); c = next[c] {
		seen.Put(c)
		s.cycle = append(s.cycle, c)
	}
	if len(s.cycle) != len(boundary) {
		return fmt.Errorf("%w: outline closes after %d of %d edges",
			ErrBoundary, len(s.cycle), len(boundary))
	}
	return nil
}

// fresh returns the lowest unused color.
func (s *state) fresh() (Color, error) {
	for c := range s.members {
		if s.members[c].Size() == 0 {
			return Color(c), nil
		}
	}
	return Gray, ErrColorsExhausted
}

// paint assigns color c to corner v.
func (s *state) paint(v facenet.CornerID, c Color) error {
	s.color[v] = c
	s.members[c].Put(v)
	s.degree[c] += s.net.Corners[v].Degree()
	if s.degree[c] > VertexDegree {
		return fmt.Errorf("%w: color %v reaches %d at corner %v",
			ErrColorOverflow, c, s.degree[c], s.net.Corners[v].Pos)
	}
	return nil
}

// merge recolors every corner of color from to color into.
func (s *state) merge(into, from Color) error {
	moved := make([]facenet.CornerID, 0, s.members[from].Size())
	s.members[from].Each(func(v facenet.CornerID) { moved = append(moved, v) })
	sort.Slice(moved, func(i, j int) bool { return moved[i] < moved[j] })

	s.members[from].Clear()
	s.degree[from] = 0
	for _, v := range moved {
		if err := s.paint(v, into); err != nil {
			return err
		}
	}
	return nil
}

// identify records that corners u and v are one cube vertex.
func (s *state) identify(u, v facenet.CornerID) error {
	cu, cv := s.color[u], s.color[v]
	switch {
	case cu != Gray && cv != Gray:
		if cu == cv {
			return nil
		}
		if cv < cu {
			cu, cv = cv, cu
		}
		return s.merge(cu, cv)
	case cu != Gray:
		return s.paint(v, cu)
	case cv != Gray:
		return s.paint(u, cv)
	}
	c, err := s.fresh()
	if err != nil {
		return err
	}
	if err := s.paint(u, c); err != nil {
		return err
	}
	return s.paint(v, c)
}

// complete reports whether color c gathered all faces of its cube vertex.
func (s *state) complete(c Color) bool {
	return c != Gray && s.degree[c] == VertexDegree
}

// occurrences counts the cycle positions holding color c.
func (s *state) occurrences(c Color) int {
	n := 0
	for _, v := range s.cycle {
		if s.color[v] == c {
			n++
		}
	}
	return n
}

// zip glues the two boundary edges meeting at cycle position i.
func (s *state) zip(i int) error {
	l := len(s.cycle)
	prev, next := s.cycle[(i+l-1)%l], s.cycle[(i+1)%l]
	if err := s.identify(prev, next); err != nil {
		return err
	}

	drop := (i + 1) % l
	kept := make([]facenet.CornerID, 0, l-2)
	for j, v := range s.cycle {
		if j != i && j != drop {
			kept = append(kept, v)
		}
	}
	s.cycle = kept
	return nil
}

// report snapshots the state for the OnPhase hook.
func (s *state) report(p Phase, step int) Report {
	r := Report{Phase: p, Step: step, Degrees: s.degree, Cycle: len(s.cycle)}
	for _, c := range s.color {
		if c == Gray {
			r.Gray++
		}
	}
	return r
}
