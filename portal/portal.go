package portal

import (
	"fmt"

	"github.com/katalvlaran/cubenet/grid"
)

// Portal is an immutable teleport rule between two boundary segments.
type Portal struct {
	EntranceStart     grid.Point     `json:"entrance_start"`
	EntranceEnd       grid.Point     `json:"entrance_end"`
	EntranceDirection grid.Direction `json:"entrance_direction"`
	ExitStart         grid.Point     `json:"exit_start"`
	ExitEnd           grid.Point     `json:"exit_end"`
	ExitDirection     grid.Direction `json:"exit_direction"`
}

// Inverse returns the portal leading back: entrance and exit swap and both
// headings reverse.
func (p Portal) Inverse() Portal {
	return Portal{
		EntranceStart:     p.ExitStart,
		EntranceEnd:       p.ExitEnd,
		EntranceDirection: p.ExitDirection.Opposite(),
		ExitStart:         p.EntranceStart,
		ExitEnd:           p.EntranceEnd,
		ExitDirection:     p.EntranceDirection.Opposite(),
	}
}

// Teleport maps a step from pos heading dir through the portal.
// It reports false unless dir is the entrance direction and pos lies on the
// entrance segment.
func (p Portal) Teleport(pos grid.Point, dir grid.Direction) (grid.Point, grid.Direction, bool) {
	if dir != p.EntranceDirection {
		return grid.Point{}, dir, false
	}
	offset, ok := project(p.EntranceStart, p.EntranceEnd, pos)
	if !ok {
		return grid.Point{}, dir, false
	}
	step := unit(p.ExitStart, p.ExitEnd)

	return p.ExitStart.Add(step.Scale(offset)), p.ExitDirection, true
}

// String formats p as "start-end heading => start-end heading".
func (p Portal) String() string {
	return fmt.Sprintf("(%v)-(%v) %v => (%v)-(%v) %v",
		p.EntranceStart, p.EntranceEnd, p.EntranceDirection,
		p.ExitStart, p.ExitEnd, p.ExitDirection)
}

// unit returns the per-axis sign of end-start.
func unit(start, end grid.Point) grid.Point {
	return grid.Point{X: grid.Sign(end.X - start.X), Y: grid.Sign(end.Y - start.Y)}
}

// project returns how many cells pos lies from start along the segment
// start-end, or false when pos is off the segment.
func project(start, end, pos grid.Point) (int, bool) {
	step := unit(start, end)
	d := pos.Sub(start)
	if (step.X == 0 && d.X != 0) || (step.Y == 0 && d.Y != 0) {
		return 0, false
	}
	offset := d.X*step.X + d.Y*step.Y
	length := grid.Abs(end.X-start.X) + grid.Abs(end.Y-start.Y)
	if offset < 0 || offset > length {
		return 0, false
	}
	return offset, true
}
