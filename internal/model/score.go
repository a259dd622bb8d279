package model

import "time"

// Score log names for results that are not a human win
const (
	ScoreNameAI   = "AI"
	ScoreNameDraw = "DRAW"
)

// Score is one line of the score log
type Score struct {
	Name       string    `json:"name"`
	Points     int       `json:"points"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ScoreTotal aggregates the score log for one name
type ScoreTotal struct {
	Name   string
	Points int
	Games  int
}
