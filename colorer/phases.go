package colorer

import "fmt"

// seed colors every corner that already touches three faces.
func (s *state) seed() error {
	for _, c := range s.net.Corners {
		if c.Degree() != VertexDegree {
			continue
		}
		col, err := s.fresh()
		if err != nil {
			return err
		}
		if err := s.paint(c.ID, col); err != nil {
			return err
		}
	}
	return nil
}

// step runs the first phase that applies.
func (s *state) step() (outcome, error) {
	if s.resolved() {
		return resolved{}, nil
	}
	if len(s.cycle) > 2 {
		if i, ok := s.pivot(true); ok {
			return progress{PhaseDiagonal}, s.zip(i)
		}
		if i, ok := s.pivot(false); ok {
			return progress{PhaseDistant}, s.zip(i)
		}
	}
	if ok, err := s.leftover(); ok || err != nil {
		return progress{PhaseLeftover}, err
	}
	return stuck{reason: fmt.Sprintf("%d edges unglued", len(s.cycle))}, nil
}

// pivot finds a cycle position whose color is complete and appears nowhere
// else on the cycle. seeded selects single-corner colors.
func (s *state) pivot(seeded bool) (int, bool) {
	for i, v := range s.cycle {
		c := s.color[v]
		if !s.complete(c) || (s.members[c].Size() == 1) != seeded {
			continue
		}
		if s.occurrences(c) == 1 {
			return i, true
		}
	}
	return 0, false
}

// leftover gives the last unused color to the gray corners when they add
// up to exactly one cube vertex.
func (s *state) leftover() (bool, error) {
	unused, free := 0, Gray
	for c := range s.members {
		switch {
		case s.members[c].Size() == 0:
			unused++
			free = Color(c)
		case !s.complete(Color(c)):
			return false, nil
		}
	}
	if unused != 1 {
		return false, nil
	}

	var gray []int
	sum := 0
	for v, c := range s.color {
		if c == Gray {
			gray = append(gray, v)
			sum += s.net.Corners[v].Degree()
		}
	}
	if len(gray) == 0 || sum != VertexDegree {
		return false, nil
	}
	for _, v := range gray {
		if err := s.paint(s.net.Corners[v].ID, free); err != nil {
			return true, err
		}
	}
	return true, nil
}

// resolved reports whether the run is finished.
func (s *state) resolved() bool {
	if len(s.cycle) != 2 {
		return false
	}
	for _, c := range s.color {
		if c == Gray {
			return false
		}
	}
	for c := range s.members {
		if !s.complete(Color(c)) {
			return false
		}
	}
	return true
}
