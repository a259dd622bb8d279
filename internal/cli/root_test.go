package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RootCmdSuite struct {
	suite.Suite
	boardPath string
	scorePath string
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdSuite))
}

func (s *RootCmdSuite) SetupTest() {
	dir := s.T().TempDir()
	s.boardPath = filepath.Join(dir, "board.txt")
	s.scorePath = filepath.Join(dir, "scores.txt")

	s.T().Setenv("AMOBA_STORAGE", "file")
	s.T().Setenv("AMOBA_BOARD_FILE", s.boardPath)
	s.T().Setenv("AMOBA_SCORE_FILE", s.scorePath)
}

func (s *RootCmdSuite) execute(input string, args ...string) (string, error) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *RootCmdSuite) writeFile(path, content string) {
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
}

func (s *RootCmdSuite) TestScoresEmpty() {
	out, err := s.execute("", "scores")
	s.Require().NoError(err)
	s.Equal("No games recorded.\n", out)
}

func (s *RootCmdSuite) TestScoresTotals() {
	s.writeFile(s.scorePath, "alice:1\nAI:1\nalice:1\nnot a score\n")

	out, err := s.execute("", "scores")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 3)
	s.Equal([]string{"Name", "Points", "Games"}, strings.Fields(lines[0]))
	s.Equal([]string{"alice", "2", "2"}, strings.Fields(lines[1]))
	s.Equal([]string{"AI", "1", "1"}, strings.Fields(lines[2]))
}

func (s *RootCmdSuite) TestScoresJSON() {
	s.writeFile(s.scorePath, "DRAW:1\n")

	out, err := s.execute("", "scores", "-o", "json")
	s.Require().NoError(err)

	var table ScoreTable
	s.Require().NoError(json.Unmarshal([]byte(out), &table))
	s.Equal([]ScoreRow{{Name: "DRAW", Points: 1, Games: 1}}, table.Totals)
}

func (s *RootCmdSuite) TestShowWithoutBoard() {
	out, err := s.execute("", "show")
	s.Require().NoError(err)
	s.Equal("No saved board.\n", out)
}

func (s *RootCmdSuite) TestShowSavedBoard() {
	s.writeFile(s.boardPath, ".....\n.....\n..x..\n..o..\n.....\n")

	out, err := s.execute("", "show")
	s.Require().NoError(err)
	s.Contains(out, "Board: 5x5, 2 marks")
	s.Contains(out, " 3 . . x . . \n")
}

func (s *RootCmdSuite) TestShowSavedBoardJSON() {
	s.writeFile(s.boardPath, "xxxx.\n.....\n..o..\n.....\n.....\n")

	out, err := s.execute("", "show", "--output", "json")
	s.Require().NoError(err)

	var view BoardView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.Equal(5, view.Rows)
	s.Equal(5, view.Occupied)
	s.Require().NotNil(view.Winner)
	s.Equal("x", *view.Winner)
}

func (s *RootCmdSuite) TestPlayExitSavesBoard() {
	out, err := s.execute("6 5\nexit\n", "play", "--name", "bob")
	s.Require().NoError(err)
	s.Contains(out, "Exiting, saving the board.")
	s.NotContains(out, "Player name:")

	data, err := os.ReadFile(s.boardPath)
	s.Require().NoError(err)
	s.Equal(".....\n.....\n.....\n..x..\n.....\n.....\n", string(data))
}

func (s *RootCmdSuite) TestDefaultCommandPlays() {
	out, err := s.execute("\n\n")
	s.Require().NoError(err)
	s.Contains(out, "Amoba NxM - command line edition")
	s.Contains(out, "Board size, e.g. 10 10 [ENTER = 10 10]: ")
}

func (s *RootCmdSuite) TestInvalidSizeFails() {
	_, err := s.execute("3 3\n", "play")
	s.Error(err)
}

func (s *RootCmdSuite) TestUnknownStorageFails() {
	_, err := s.execute("", "scores", "--storage", "tape")
	s.Error(err)
}

func (s *RootCmdSuite) TestBadLogLevelFails() {
	_, err := s.execute("", "scores", "--log-level", "loud")
	s.Error(err)
}
