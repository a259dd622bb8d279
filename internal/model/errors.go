package model

import "errors"

// Common errors used across the application
var (
	// Board construction errors
	ErrInvalidDimensions = errors.New("invalid board size, require 5 <= cols <= rows <= 25")

	// Coordinate errors
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// Move errors
	ErrOutOfBounds  = errors.New("position is outside the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNotCenter    = errors.New("first move must be at the center")
	ErrNoContact    = errors.New("move must touch an existing mark")

	// Persistence errors
	ErrBoardNotFound    = errors.New("board not found")
	ErrInvalidBoardText = errors.New("invalid board text")
)
