package grid

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads a full puzzle: board rows, one blank line, then the move list.
func Parse(r io.Reader) (*Puzzle, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read puzzle: %w", err)
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	board, moves, found := strings.Cut(text, "\n\n")
	if !found {
		return nil, fmt.Errorf("%w: missing blank line before moves", ErrSyntax)
	}
	g, err := ParseGrid(board)
	if err != nil {
		return nil, err
	}
	ms, err := ParseMoves(moves)
	if err != nil {
		return nil, err
	}

	return &Puzzle{Grid: g, Moves: ms}, nil
}

// ParseGrid parses board rows only. Leading empty lines are skipped so that
// indented literals in tests and request bodies work unchanged.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Field, 0, len(lines))
	for y, line := range lines {
		row := make([]Field, 0, len(line))
		for x, ch := range line {
			switch ch {
			case '.':
				row = append(row, Free)
			case '#':
				row = append(row, Stone)
			case ' ':
				row = append(row, Void)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrSyntax, ch, y+1, x+1)
			}
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}

// ParseMoves parses a move list such as "10R5L5".
func ParseMoves(text string) ([]Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty move list", ErrSyntax)
	}
	var (
		moves []Move
		n     = -1 // pending number, -1 when none
	)
	flush := func() {
		if n >= 0 {
			moves = append(moves, Move{Kind: Forward, Steps: n})
			n = -1
		}
	}
	for i, ch := range text {
		switch {
		case ch >= '0' && ch <= '9':
			if n < 0 {
				n = 0
			}
			n = n*10 + int(ch-'0')
		case ch == 'L':
			flush()
			moves = append(moves, Move{Kind: TurnLeft})
		case ch == 'R':
			flush()
			moves = append(moves, Move{Kind: TurnRight})
		default:
			return nil, fmt.Errorf("%w: unexpected %q in moves at offset %d", ErrSyntax, ch, i)
		}
	}
	flush()

	return moves, nil
}
