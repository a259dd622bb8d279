package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) newBoard(rows, cols int) *Board {
	b, err := NewBoard(rows, cols)
	s.Require().NoError(err)
	return b
}

func (s *BoardSuite) placeAll(b *Board, player Player, positions ...Position) {
	for _, pos := range positions {
		s.Require().True(b.Place(pos, player), "place %s", pos)
	}
}

// NewBoard tests

func (s *BoardSuite) TestNewBoardAcceptsAllSizesWithinBounds() {
	for rows := MinBoardSize; rows <= MaxBoardSize; rows++ {
		for cols := MinBoardSize; cols <= rows; cols++ {
			b, err := NewBoard(rows, cols)
			s.Require().NoError(err, "%dx%d", rows, cols)
			s.Equal(rows, b.Rows())
			s.Equal(cols, b.Cols())
			s.Len(b.EmptyPositions(), rows*cols)
		}
	}
}

func (s *BoardSuite) TestNewBoardRejectsInvalidSizes() {
	cases := []struct {
		rows, cols int
	}{
		{4, 4},
		{10, 4},
		{5, 6},  // cols > rows
		{26, 5}, // rows too large
		{26, 26},
		{0, 0},
		{-5, 5},
	}
	for _, tc := range cases {
		_, err := NewBoard(tc.rows, tc.cols)
		s.ErrorIs(err, ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

// PlaceInitialCenter tests

func (s *BoardSuite) TestPlaceInitialCenterMarksCenterForHuman() {
	for rows := MinBoardSize; rows <= MaxBoardSize; rows++ {
		for cols := MinBoardSize; cols <= rows; cols++ {
			b := s.newBoard(rows, cols)
			b.PlaceInitialCenter()

			center := Position{Row: rows / 2, Col: cols / 2}
			s.Equal(SymbolX, b.At(center))
			s.Equal(1, b.OccupiedCount())
		}
	}
}

// IsValidMove tests

func (s *BoardSuite) TestEmptyBoardOnlyAcceptsCenter() {
	b := s.newBoard(7, 5)
	center := b.Center()

	for _, pos := range b.AllPositions() {
		if pos == center {
			s.True(b.IsValidMove(pos))
		} else {
			s.False(b.IsValidMove(pos), "%s", pos)
			s.ErrorIs(b.ValidateMove(pos), ErrNotCenter)
		}
	}
}

func (s *BoardSuite) TestSeededTenByTen() {
	b := s.newBoard(10, 10)
	b.PlaceInitialCenter()

	s.False(b.IsValidMove(Position{Row: 0, Col: 0}))
	s.ErrorIs(b.ValidateMove(Position{Row: 0, Col: 0}), ErrNoContact)
	s.True(b.IsValidMove(Position{Row: 4, Col: 4}))
}

func (s *BoardSuite) TestSeededSevenByFive() {
	b := s.newBoard(7, 5)
	b.PlaceInitialCenter()
	s.Equal(Position{Row: 3, Col: 2}, b.Center())

	s.False(b.IsValidMove(Position{Row: 0, Col: 0}))
	s.True(b.IsValidMove(Position{Row: 2, Col: 1}))
}

func (s *BoardSuite) TestContactRuleMatchesNeighbourScan() {
	b := s.newBoard(8, 6)
	b.PlaceInitialCenter()
	s.placeAll(b, PlayerO, Position{Row: 0, Col: 0}, Position{Row: 7, Col: 5})

	for _, pos := range b.AllPositions() {
		expected := false
		if b.IsEmpty(pos) {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
					if (dr != 0 || dc != 0) && b.InBounds(n) && !b.IsEmpty(n) {
						expected = true
					}
				}
			}
		}
		s.Equal(expected, b.IsValidMove(pos), "%s", pos)
	}
}

func (s *BoardSuite) TestValidateMoveReasons() {
	b := s.newBoard(5, 5)
	b.PlaceInitialCenter()

	s.ErrorIs(b.ValidateMove(Position{Row: -1, Col: 0}), ErrOutOfBounds)
	s.ErrorIs(b.ValidateMove(Position{Row: 0, Col: 5}), ErrOutOfBounds)
	s.ErrorIs(b.ValidateMove(b.Center()), ErrCellOccupied)
	s.ErrorIs(b.ValidateMove(Position{Row: 0, Col: 0}), ErrNoContact)
	s.NoError(b.ValidateMove(Position{Row: 1, Col: 2}))
}

func (s *BoardSuite) TestValidMovesAroundSeed() {
	b := s.newBoard(5, 5)
	b.PlaceInitialCenter()

	s.Equal([]Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}, b.ValidMoves())
}

// Place tests

func (s *BoardSuite) TestPlaceRejectsOccupiedAndOutOfBounds() {
	b := s.newBoard(5, 5)

	s.True(b.Place(Position{Row: 0, Col: 0}, PlayerO))
	s.False(b.Place(Position{Row: 0, Col: 0}, PlayerX))
	s.Equal(SymbolO, b.At(Position{Row: 0, Col: 0}))

	s.False(b.Place(Position{Row: 5, Col: 0}, PlayerX))
	s.False(b.Place(Position{Row: 0, Col: -1}, PlayerX))
	s.Equal(1, b.OccupiedCount())
}

func (s *BoardSuite) TestPlaceIgnoresContactRule() {
	b := s.newBoard(5, 5)
	s.True(b.Place(Position{Row: 4, Col: 4}, PlayerX))
}

func (s *BoardSuite) TestIsFull() {
	b := s.newBoard(5, 5)
	for _, pos := range b.AllPositions() {
		s.False(b.IsFull())
		b.Place(pos, PlayerO)
	}
	s.True(b.IsFull())
	s.Empty(b.EmptyPositions())
}

// CheckWinner tests

func (s *BoardSuite) TestWinnerHorizontal() {
	b := s.newBoard(6, 5)
	s.placeAll(b, PlayerX,
		Position{Row: 2, Col: 1}, Position{Row: 2, Col: 2},
		Position{Row: 2, Col: 3}, Position{Row: 2, Col: 4},
	)

	winner, ok := b.CheckWinner()
	s.True(ok)
	s.Equal(PlayerX, winner)
}

func (s *BoardSuite) TestWinnerVertical() {
	b := s.newBoard(6, 5)
	s.placeAll(b, PlayerO,
		Position{Row: 2, Col: 0}, Position{Row: 3, Col: 0},
		Position{Row: 4, Col: 0}, Position{Row: 5, Col: 0},
	)

	winner, ok := b.CheckWinner()
	s.True(ok)
	s.Equal(PlayerO, winner)
}

func (s *BoardSuite) TestWinnerDiagonalDownRight() {
	b := s.newBoard(7, 7)
	s.placeAll(b, PlayerX,
		Position{Row: 3, Col: 3}, Position{Row: 4, Col: 4},
		Position{Row: 5, Col: 5}, Position{Row: 6, Col: 6},
	)

	winner, ok := b.CheckWinner()
	s.True(ok)
	s.Equal(PlayerX, winner)
}

func (s *BoardSuite) TestWinnerDiagonalDownLeft() {
	b := s.newBoard(7, 7)
	s.placeAll(b, PlayerO,
		Position{Row: 0, Col: 6}, Position{Row: 1, Col: 5},
		Position{Row: 2, Col: 4}, Position{Row: 3, Col: 3},
	)

	winner, ok := b.CheckWinner()
	s.True(ok)
	s.Equal(PlayerO, winner)
}

func (s *BoardSuite) TestNoWinnerForThreeInARow() {
	b := s.newBoard(6, 5)
	s.placeAll(b, PlayerX, Position{Row: 2, Col: 1}, Position{Row: 2, Col: 2}, Position{Row: 2, Col: 3})
	s.placeAll(b, PlayerO, Position{Row: 0, Col: 0}, Position{Row: 1, Col: 1}, Position{Row: 2, Col: 0})

	_, ok := b.CheckWinner()
	s.False(ok)
}

func (s *BoardSuite) TestNoWinnerForMixedRun() {
	b := s.newBoard(5, 5)
	s.placeAll(b, PlayerX, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}, Position{Row: 0, Col: 3})
	s.placeAll(b, PlayerO, Position{Row: 0, Col: 2})

	_, ok := b.CheckWinner()
	s.False(ok)
}

func (s *BoardSuite) TestNoWinnerOnEmptyBoard() {
	b := s.newBoard(5, 5)
	_, ok := b.CheckWinner()
	s.False(ok)
}

// Render tests

func (s *BoardSuite) TestRender() {
	b := s.newBoard(5, 5)
	b.PlaceInitialCenter()
	b.Place(Position{Row: 0, Col: 4}, PlayerO)

	expected := "   a b c d e \n" +
		" 1 . . . . o \n" +
		" 2 . . . . . \n" +
		" 3 . . x . . \n" +
		" 4 . . . . . \n" +
		" 5 . . . . . \n"
	s.Equal(expected, b.Render())
}

// FromText / Lines tests

func (s *BoardSuite) TestLinesRoundTrip() {
	b := s.newBoard(6, 5)
	b.PlaceInitialCenter()
	s.placeAll(b, PlayerO, Position{Row: 0, Col: 0}, Position{Row: 5, Col: 4})

	lines := b.Lines()
	s.Len(lines, 6)
	for _, line := range lines {
		s.Len(line, 5)
	}

	loaded, err := FromText(6, 5, lines)
	s.Require().NoError(err)
	s.Equal(b.Lines(), loaded.Lines())
	s.Equal(b.OccupiedCount(), loaded.OccupiedCount())
}

func (s *BoardSuite) TestFromTextIsForgiving() {
	lines := []string{
		"x?o..",
		"o",
		"",
		"XXOO.",
	}
	b, err := FromText(5, 5, lines)
	s.Require().NoError(err)

	s.Equal([]string{
		"x.o..",
		"o....",
		".....",
		".....",
		".....",
	}, b.Lines())
	s.Equal(3, b.OccupiedCount())
}

func (s *BoardSuite) TestFromTextIgnoresExtraLinesAndColumns() {
	lines := []string{
		"xxxxxxx",
		".....",
		".....",
		".....",
		".....",
		"ooooo",
	}
	b, err := FromText(5, 5, lines)
	s.Require().NoError(err)
	s.Equal("xxxxx", b.Lines()[0])
	s.Equal(5, b.OccupiedCount())
}

func (s *BoardSuite) TestFromTextRejectsInvalidSize() {
	_, err := FromText(3, 4, []string{"....", "....", "...."})
	s.ErrorIs(err, ErrInvalidDimensions)
}
