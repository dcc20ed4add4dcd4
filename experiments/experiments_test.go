package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRun(t *testing.T) {
	out := t.TempDir()
	s := Series{
		Name:     "heuristic_vs_random",
		Games:    10,
		Seeds:    4,
		Opponent: "random",
		OutDir:   out,
		Rng:      rand.New(rand.NewSource(11)),
	}

	summary, err := Run(context.Background(), s)

	require.NoError(t, err)
	require.Equal(t, 10, summary.Games)
	require.Equal(t, 10, summary.HeuristicWins+summary.OpponentWins+summary.Ties)
	require.Equal(t, filepath.Join(out, s.Name), filepath.Dir(summary.Dir))

	f, err := os.Open(filepath.Join(summary.Dir, "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 11)
	require.Equal(t, "Player 1", rows[1][1])

	_, err = os.Stat(filepath.Join(summary.Dir, "move_records.csv"))
	require.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown opponent", func(t *testing.T) {
		_, err := Run(context.Background(), Series{Name: "bad", Games: 1, Seeds: 3, Opponent: "minimax", OutDir: t.TempDir()})
		require.ErrorContains(t, err, "minimax")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Run(ctx, Series{Name: "cancelled", Games: 1, Seeds: 3, Opponent: "random", OutDir: t.TempDir()})
		require.ErrorIs(t, err, context.Canceled)
	})
}
