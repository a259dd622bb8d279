package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/amoba/internal/factory"
	"github.com/mcoot/amoba/internal/model"
	"github.com/mcoot/amoba/internal/services/game"
)

// DefaultPlayerName is used when the name prompt is left empty
const DefaultPlayerName = "Player1"

// SessionOptions configures an interactive session
type SessionOptions struct {
	DefaultRows int
	DefaultCols int
	// PlayerName skips the name prompt when set
	PlayerName string
}

// Session drives one interactive game over a line-oriented input
type Session struct {
	app  *factory.App
	in   *bufio.Scanner
	out  io.Writer
	opts SessionOptions

	game *game.Game
	name string
}

// NewSession creates a session reading commands from in and writing to out
func NewSession(app *factory.App, in io.Reader, out io.Writer, opts SessionOptions) *Session {
	return &Session{
		app:  app,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
}

// Run plays until the game finishes or the player exits. End of input counts
// as exit. Only an out-of-bounds board size is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Amoba NxM - command line edition")

	rows, cols := s.promptSize()
	board, err := s.app.BoardService.NewBoard(rows, cols)
	if err != nil {
		return err
	}
	if loaded, ok := s.app.BoardService.Load(ctx); ok {
		board = loaded
		fmt.Fprintln(s.out, "Loaded the saved board.")
	}
	s.game = s.app.NewGame(board)

	s.name = s.promptName()
	fmt.Fprintln(s.out, "Game starts. You are x, the computer is o. Your move first.")

	for !s.game.IsFinished() {
		fmt.Fprint(s.out, s.game.Board().Render())

		if s.game.CurrentPlayer() != s.game.Human() {
			fmt.Fprintln(s.out, "Computer is moving...")
			if pos, ok := s.game.PlayAIMove(); ok {
				fmt.Fprintf(s.out, "Computer placed: %s\n", pos)
			}
			continue
		}

		fmt.Fprint(s.out, "Move (e.g. a5) or command (save, load, exit): ")
		line, ok := s.readLine()
		if !ok {
			line = "exit"
		}
		if s.handleInput(ctx, line) {
			return nil
		}
	}

	s.finish(ctx)
	return nil
}

// handleInput applies one line from the human turn and reports whether the
// session should stop
func (s *Session) handleInput(ctx context.Context, line string) bool {
	switch {
	case strings.EqualFold(line, "exit"):
		fmt.Fprintln(s.out, "Exiting, saving the board.")
		_ = s.app.BoardService.Save(ctx, s.game.Board())
		return true

	case strings.EqualFold(line, "save"):
		if err := s.app.BoardService.Save(ctx, s.game.Board()); err != nil {
			fmt.Fprintf(s.out, "Save failed: %v\n", err)
		} else {
			fmt.Fprintln(s.out, "Saved.")
		}

	case strings.EqualFold(line, "load"):
		loaded, ok := s.app.BoardService.Load(ctx)
		if !ok {
			fmt.Fprintln(s.out, "No saved board available.")
			return false
		}
		s.game.SetBoard(loaded)
		fmt.Fprintln(s.out, "Loaded the saved board.")

	default:
		pos, err := model.ParsePosition(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid coordinate format. Usage: a5")
			return false
		}
		if err := s.game.PlayAt(pos); err != nil {
			fmt.Fprintf(s.out, "Invalid move (%v), try again.\n", err)
		}
	}
	return false
}

func (s *Session) finish(ctx context.Context) {
	fmt.Fprint(s.out, s.game.Board().Render())

	winner, won := s.game.Winner()
	switch {
	case !won:
		fmt.Fprintln(s.out, "Draw, the board is full.")
	case winner == s.game.Human():
		fmt.Fprintf(s.out, "Winner: %s (%s)\n", s.name, winner)
	default:
		fmt.Fprintf(s.out, "Winner: computer (%s)\n", winner)
	}

	if _, err := s.app.ScoreboardService.Record(ctx, s.name, s.game.Human(), winner, won); err != nil {
		fmt.Fprintln(s.out, "Could not record the score.")
	}
	fmt.Fprintln(s.out, "Thanks for playing.")
}

// promptSize reads "rows cols". Empty or unparseable input falls back to the
// defaults; bounds are checked by the board itself.
func (s *Session) promptSize() (int, int) {
	rows, cols := s.opts.DefaultRows, s.opts.DefaultCols
	fmt.Fprintf(s.out, "Board size, e.g. %d %d [ENTER = %d %d]: ", rows, cols, rows, cols)

	line, _ := s.readLine()
	if line == "" {
		return rows, cols
	}

	r, c, err := parseSize(line)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid input, using %dx%d.\n", rows, cols)
		return rows, cols
	}
	return r, c
}

func (s *Session) promptName() string {
	if name := strings.TrimSpace(s.opts.PlayerName); name != "" {
		return name
	}
	fmt.Fprint(s.out, "Player name: ")
	name, _ := s.readLine()
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// readLine returns the next trimmed input line, or false at end of input
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

var errSizeFormat = errors.New("expected two numbers")

func parseSize(line string) (int, int, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return 0, 0, errSizeFormat
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}
