package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String returns the coordinate in move notation, e.g. "a5" for (4, 0)
func (p Position) String() string {
	return fmt.Sprintf("%c%d", rune('a'+p.Col), p.Row+1)
}

// ParsePosition parses move notation: a column letter a-z (any case)
// followed by a 1-based row number.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("%w: %q is too short", ErrInvalidCoordinate, s)
	}

	letter := s[0]
	if letter < 'a' || letter > 'z' {
		return Position{}, fmt.Errorf("%w: column %q is not a-z", ErrInvalidCoordinate, letter)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Position{}, fmt.Errorf("%w: row %q is not a positive number", ErrInvalidCoordinate, s[1:])
	}

	return Position{Row: row - 1, Col: int(letter - 'a')}, nil
}
