package metrics

import (
	"encoding/csv"
	"errors"
	"kalah/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "series")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID: 1,
		GameMetric: GameMetric{
			StartingPlayer: game.Player1,
			Winner:         game.Tie,
			Store1:         18,
			Store2:         18,
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     30,
		},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Player1, House: 3, ExtraTurn: true}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.Player1, House: 0, Captured: 4}},
	})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "winner", games[0][2])
	require.Equal(t, []string{"1", "Player 1", "The game ended in a tie.", "18", "18", "30", "0",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 3)
	require.Equal(t, []string{"1", "1", "Player 1", "3", "true", "0", "0s"}, moves[1])
	require.Equal(t, "4", moves[2][5])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	gs := game.NewGameState(3)
	c.Start(gs.CurrentPlayer)

	next, result := gs.Play(3)
	c.AddMove(game.Player1, result, time.Millisecond)
	c.AddRejection()

	gameMetric, moves := c.Complete(next)

	require.Equal(t, game.Undecided, gameMetric.Winner)
	require.Equal(t, 1, gameMetric.TotalMoves)
	require.Equal(t, 1, gameMetric.Rejected)
	require.Equal(t, 1, gameMetric.Store1)
	require.Equal(t, []MoveMetric{{Step: 1, Player: game.Player1, House: 3, ExtraTurn: true, Duration: time.Millisecond}}, moves)
	require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSVReportsFlushErrors(t *testing.T) {
	err := writeCSV(failingWriter{}, "game_records.csv", []string{"id"}, [][]string{{"1"}})

	require.ErrorContains(t, err, "disk full")
}

func TestWriterReportsMissingDirectory(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "series")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	err = w.WriteGameRecords(nil)

	require.ErrorContains(t, err, "failed to create game_records.csv")
}
