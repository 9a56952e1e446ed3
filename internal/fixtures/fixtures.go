// Package fixtures holds puzzle boards shared by the tests of several
// packages: the canonical sample, every one of the eleven cube nets and a
// handful of malformed layouts.
package fixtures

import (
	"fmt"
	"strings"
)

// Sample is the canonical 16×12 board with its move list.
const Sample = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5`

// SampleBoard is Sample without the move list.
var SampleBoard, _, _ = strings.Cut(Sample, "\n\n")

// Sample passwords.
const (
	SampleFlatPassword = 6032
	SampleCubePassword = 5031
)

// Layouts are the eleven cube nets as face maps ('X' = face, '.' = none).
var Layouts = map[string][]string{
	"1-4-1a": {"X...", "XXXX", "X..."},
	"1-4-1b": {"X...", "XXXX", ".X.."},
	"1-4-1c": {"X...", "XXXX", "..X."},
	"1-4-1d": {"X...", "XXXX", "...X"},
	"1-4-1e": {".X..", "XXXX", ".X.."},
	"1-4-1f": {".X..", "XXXX", "..X."},
	"2-3-1a": {"XX..", ".XXX", ".X.."},
	"2-3-1b": {"XX..", ".XXX", "..X."},
	"2-3-1c": {"XX..", ".XXX", "...X"},
	"2-2-2":  {"XX..", ".XX.", "..XX"},
	"3-3":    {"XXX..", "..XXX"},
	"sample": {"..X.", "XXX.", "..XX"},
}

// Malformed are face maps that do not fold into a cube.
var Malformed = map[string][]string{
	"five":    {"X...", "XXXX"},
	"seven":   {"X...", "XXXX", "XX.."},
	"strip":   {"XXXXXX"},
	"split":   {"XX.X", "X..X", "...X"},
	"block":   {"XXX", "XXX"},
	"overlap": {"XXXXX", "X...."},
}

// Board expands a face map into a board with the given side length. Cells
// are Free except for one Stone per face placed on its diagonal, so boards
// stay walkable but not trivially so.
func Board(layout []string, side int) string {
	var sb strings.Builder
	for fy, line := range layout {
		for y := 0; y < side; y++ {
			row := make([]byte, 0, len(line)*side)
			for _, ch := range line {
				for x := 0; x < side; x++ {
					switch {
					case ch != 'X':
						row = append(row, ' ')
					case x == y && side > 2 && (fy+x)%3 == 1:
						row = append(row, '#')
					default:
						row = append(row, '.')
					}
				}
			}
			sb.WriteString(strings.TrimRight(string(row), " "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Puzzle wraps a board with a move list.
func Puzzle(board, moves string) string {
	return fmt.Sprintf("%s\n%s", board, moves)
}
