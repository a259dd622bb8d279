package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/amoba/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case ScoreTable:
		o.printScores(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is the printable form of a saved board
type BoardView struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Lines    []string `json:"lines"`
	Occupied int      `json:"occupied"`
	Winner   *string  `json:"winner,omitempty"`

	rendered string
}

// NewBoardView captures a board for printing
func NewBoardView(b *model.Board) BoardView {
	view := BoardView{
		Rows:     b.Rows(),
		Cols:     b.Cols(),
		Lines:    b.Lines(),
		Occupied: b.OccupiedCount(),
		rendered: b.Render(),
	}
	if winner, ok := b.CheckWinner(); ok {
		w := winner.String()
		view.Winner = &w
	}
	return view
}

// ScoreTable is the printable score summary
type ScoreTable struct {
	Totals []ScoreRow `json:"totals"`
}

// ScoreRow is one name in the score summary
type ScoreRow struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Games  int    `json:"games"`
}

// NewScoreTable converts scoreboard totals for printing
func NewScoreTable(totals []model.ScoreTotal) ScoreTable {
	rows := make([]ScoreRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, ScoreRow{Name: t.Name, Points: t.Points, Games: t.Games})
	}
	return ScoreTable{Totals: rows}
}

func (o *Output) printBoard(b BoardView) {
	fmt.Fprintf(o.w, "Board: %dx%d, %d marks\n", b.Rows, b.Cols, b.Occupied)
	fmt.Fprint(o.w, b.rendered)
	if b.Winner != nil {
		fmt.Fprintf(o.w, "Winner: %s\n", *b.Winner)
	}
}

func (o *Output) printScores(t ScoreTable) {
	if len(t.Totals) == 0 {
		fmt.Fprintln(o.w, "No games recorded.")
		return
	}
	width := len("Name")
	for _, row := range t.Totals {
		width = max(width, len(row.Name))
	}
	fmt.Fprintf(o.w, "%-*s  %6s  %5s\n", width, "Name", "Points", "Games")
	for _, row := range t.Totals {
		fmt.Fprintf(o.w, "%-*s  %6d  %5d\n", width, row.Name, row.Points, row.Games)
	}
}
