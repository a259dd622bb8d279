package model

import (
	"fmt"
	"strings"
)

// Board size limits
const (
	MinBoardSize = 5
	MaxBoardSize = 25

	// WinLength is the number of consecutive marks that wins the game
	WinLength = 4
)

// winDirections are the line directions scanned from each start cell:
// right, down, down-right, down-left
var winDirections = [4]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Board is the game grid. Dimensions are fixed at construction and a cell,
// once occupied, is never cleared.
type Board struct {
	rows     int
	cols     int
	cells    [][]rune // Row-major: cells[row][col], SymbolEmpty means empty
	occupied int
}

// NewBoard creates an empty board. It fails unless 5 <= cols <= rows <= 25.
func NewBoard(rows, cols int) (*Board, error) {
	if cols < MinBoardSize || rows < cols || rows > MaxBoardSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = SymbolEmpty
		}
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// FromText rebuilds a board from its persisted lines. Only '.', 'x' and 'o'
// are copied; any other character, and anything missing from short lines,
// stays empty.
func FromText(rows, cols int, lines []string) (*Board, error) {
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	for row := 0; row < min(rows, len(lines)); row++ {
		line := []rune(lines[row])
		for col := 0; col < min(cols, len(line)); col++ {
			switch ch := line[col]; ch {
			case SymbolX, SymbolO:
				b.cells[row][col] = ch
				b.occupied++
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns
func (b *Board) Cols() int { return b.cols }

// Center returns the seed cell (rows/2, cols/2)
func (b *Board) Center() Position {
	return Position{Row: b.rows / 2, Col: b.cols / 2}
}

// At returns the symbol at the given position, or SymbolEmpty if out of bounds
func (b *Board) At(pos Position) rune {
	if !b.InBounds(pos) {
		return SymbolEmpty
	}
	return b.cells[pos.Row][pos.Col]
}

// InBounds returns true if the position is within the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// IsEmpty returns true if the position is in bounds and unoccupied
func (b *Board) IsEmpty(pos Position) bool {
	return b.InBounds(pos) && b.cells[pos.Row][pos.Col] == SymbolEmpty
}

// OccupiedCount returns the number of marked cells
func (b *Board) OccupiedCount() int {
	return b.occupied
}

// IsFull returns true if no empty cell remains
func (b *Board) IsFull() bool {
	return b.occupied == b.rows*b.cols
}

// PlaceInitialCenter marks the center cell for the human side. It is the seed
// move and skips the legality check.
func (b *Board) PlaceInitialCenter() {
	center := b.Center()
	if b.cells[center.Row][center.Col] == SymbolEmpty {
		b.occupied++
	}
	b.cells[center.Row][center.Col] = PlayerX.Symbol()
}

// Place writes the player's mark. It returns false if the position is out of
// bounds or occupied. The contact rule is not checked here.
func (b *Board) Place(pos Position, player Player) bool {
	if !b.IsEmpty(pos) {
		return false
	}
	b.cells[pos.Row][pos.Col] = player.Symbol()
	b.occupied++
	return true
}

// ValidateMove returns the reason a move is illegal, or nil.
//
// On an empty board only the center is playable. Otherwise the target must
// touch at least one occupied cell, diagonals included.
func (b *Board) ValidateMove(pos Position) error {
	if !b.InBounds(pos) {
		return ErrOutOfBounds
	}
	if b.cells[pos.Row][pos.Col] != SymbolEmpty {
		return ErrCellOccupied
	}

	if b.occupied == 0 {
		if pos != b.Center() {
			return ErrNotCenter
		}
		return nil
	}

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if b.InBounds(n) && b.cells[n.Row][n.Col] != SymbolEmpty {
				return nil
			}
		}
	}
	return ErrNoContact
}

// IsValidMove reports whether the move is legal
func (b *Board) IsValidMove(pos Position) bool {
	return b.ValidateMove(pos) == nil
}

// CheckWinner returns the owner of any run of WinLength or more equal marks
// along a row, column or diagonal.
func (b *Board) CheckWinner() (Player, bool) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			symbol := b.cells[row][col]
			if symbol == SymbolEmpty {
				continue
			}
			for _, d := range winDirections {
				if b.runLength(Position{Row: row, Col: col}, d, symbol) >= WinLength {
					return PlayerFromSymbol(symbol)
				}
			}
		}
	}
	return 0, false
}

// runLength counts consecutive cells holding symbol from start along d
func (b *Board) runLength(start, d Position, symbol rune) int {
	count := 1
	p := Position{Row: start.Row + d.Row, Col: start.Col + d.Col}
	for b.InBounds(p) && b.cells[p.Row][p.Col] == symbol {
		count++
		p = Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
	}
	return count
}

// AllPositions returns every coordinate in row-major order
func (b *Board) AllPositions() []Position {
	out := make([]Position, 0, b.rows*b.cols)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}

// EmptyPositions returns the unoccupied coordinates in row-major order
func (b *Board) EmptyPositions() []Position {
	var out []Position
	for _, pos := range b.AllPositions() {
		if b.IsEmpty(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// ValidMoves returns the legal moves for the current state in row-major order
func (b *Board) ValidMoves() []Position {
	var out []Position
	for _, pos := range b.EmptyPositions() {
		if b.IsValidMove(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// Render draws the board with column letters on top and 1-based row numbers
// on the left. The output is for display only.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < b.cols; col++ {
		sb.WriteRune(rune('a' + col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := 0; row < b.rows; row++ {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < b.cols; col++ {
			sb.WriteRune(b.cells[row][col])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lines returns the persisted text form: one string of cols characters per row
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	for row := 0; row < b.rows; row++ {
		lines[row] = string(b.cells[row])
	}
	return lines
}
