package game

import (
	"log/slog"

	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/services/bot"
)

// State is the phase of a game
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateStalemate  State = "stalemate" // Board full, nobody won
)

// Game manages turn order and the outcome over a Board. All rule checks and
// mutations are delegated to the board.
//
// Game does not guard against moves after the end; callers check IsFinished
// before every move.
type Game struct {
	board    *model.Board
	human    model.Player
	ai       model.Player
	current  model.Player
	winner   model.Player
	hasWon   bool
	strategy bot.Strategy
	logger   *slog.Logger
}

// New creates a game with the human to move first
func New(board *model.Board, human, ai model.Player, strategy bot.Strategy, logger *slog.Logger) *Game {
	return &Game{
		board:    board,
		human:    human,
		ai:       ai,
		current:  human,
		strategy: strategy,
		logger:   logger.With(slog.String("component", "game")),
	}
}

// Board returns the board currently in play
func (g *Game) Board() *model.Board {
	return g.board
}

// SetBoard swaps in a loaded board. The winner is re-evaluated from the new
// grid; the turn is left as it was.
func (g *Game) SetBoard(board *model.Board) {
	g.board = board
	g.winner, g.hasWon = board.CheckWinner()
	g.logger.Info("board replaced",
		slog.Int("rows", board.Rows()),
		slog.Int("cols", board.Cols()),
		slog.Int("occupied", board.OccupiedCount()),
	)
}

// CurrentPlayer returns the side due to move
func (g *Game) CurrentPlayer() model.Player {
	return g.current
}

// Human returns the human side
func (g *Game) Human() model.Player {
	return g.human
}

// AI returns the automated side
func (g *Game) AI() model.Player {
	return g.ai
}

// PlayAt places the current player's mark. An illegal move returns the
// board's reason and leaves the turn unchanged.
func (g *Game) PlayAt(pos model.Position) error {
	if err := g.board.ValidateMove(pos); err != nil {
		return err
	}
	player := g.current
	g.board.Place(pos, player)

	g.logger.Debug("move played",
		slog.String("player", player.String()),
		slog.String("position", pos.String()),
	)

	g.checkWinner()
	g.switchTurn()
	return nil
}

// PlayAIMove lets the strategy pick a valid move for the automated side. With
// no valid move the turn passes without a placement and false is returned.
func (g *Game) PlayAIMove() (model.Position, bool) {
	pos, ok := g.strategy.ChoosePosition(g.board)
	if !ok {
		g.logger.Warn("no valid move for automated player")
		g.switchTurn()
		return model.Position{}, false
	}
	g.board.Place(pos, g.ai)

	g.logger.Debug("move played",
		slog.String("player", g.ai.String()),
		slog.String("position", pos.String()),
	)

	g.checkWinner()
	g.switchTurn()
	return pos, true
}

// IsFinished returns true once a winner exists or no empty cell remains.
// It checks emptiness only, not whether an empty cell is a legal move.
func (g *Game) IsFinished() bool {
	return g.hasWon || g.board.IsFull()
}

// Winner returns the recorded winner, if any
func (g *Game) Winner() (model.Player, bool) {
	return g.winner, g.hasWon
}

// State returns the game phase
func (g *Game) State() State {
	switch {
	case g.hasWon:
		return StateWon
	case g.board.IsFull():
		return StateStalemate
	default:
		return StateInProgress
	}
}

func (g *Game) checkWinner() {
	if winner, ok := g.board.CheckWinner(); ok {
		g.winner, g.hasWon = winner, true
		g.logger.Info("game won", slog.String("winner", winner.String()))
	}
}

// switchTurn hands the move to the other side unless the game has been won
func (g *Game) switchTurn() {
	if g.hasWon {
		return
	}
	if g.current == g.human {
		g.current = g.ai
	} else {
		g.current = g.human
	}
}
