package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"kalah/engine"
	"kalah/game"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRendererBoard(t *testing.T) {
	var out bytes.Buffer
	b := game.Board{1, 2, 3, 4, 5, 6, 20, 7, 8, 9, 10, 11, 12, 30}

	NewRenderer(&out).Board(b)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "  12  11  10   9   8   7", lines[2], "Player 2 houses should read right to left")
	require.Equal(t, "30"+strings.Repeat(" ", 26)+"20   Stores", lines[4])
	require.Equal(t, "   1   2   3   4   5   6", lines[6])
}

func TestRendererEvents(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	gs := game.NewGameState(3)

	next, result := gs.Play(3)
	r.MoveApplied(next, result)
	require.Contains(t, out.String(), "Player 1 sowed house 3 and moves again.")
	require.Contains(t, out.String(), "Player 1\n")

	out.Reset()
	r.MoveRejected(next, 3, engine.ErrIllegalMove)
	require.Equal(t, "Invalid input.\n", out.String())

	out.Reset()
	finished := &game.GameState{Board: game.Board{6: 5, 13: 9}, Phase: game.Finished}
	r.GameOver(finished)
	require.Contains(t, out.String(), "Player 2 is the winner.")
}

func TestHumanFindMove(t *testing.T) {
	gs := game.NewGameState(3)

	t.Run("skips malformed input", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("abc\n\n 4 \n"), &out)

		house, err := h.FindMove(context.Background(), gs)

		require.NoError(t, err)
		require.Equal(t, 4, house)
		require.Equal(t, 2, strings.Count(out.String(), "Invalid input."))
	})

	t.Run("passes out-of-range numbers to the engine", func(t *testing.T) {
		h := NewHuman(strings.NewReader("12\n"), &bytes.Buffer{})

		house, err := h.FindMove(context.Background(), gs)

		require.NoError(t, err)
		require.Equal(t, 12, house)
	})

	t.Run("quits", func(t *testing.T) {
		for _, input := range []string{"q\n", "quit\n", ""} {
			h := NewHuman(strings.NewReader(input), &bytes.Buffer{})

			_, err := h.FindMove(context.Background(), gs)

			require.True(t, errors.Is(err, engine.ErrQuit), "input %q", input)
		}
	})

	t.Run("stops waiting when cancelled", func(t *testing.T) {
		in, w := io.Pipe()
		defer w.Close()
		h := NewHuman(in, &bytes.Buffer{})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := h.FindMove(ctx, gs)

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("keeps reading after a cancelled prompt", func(t *testing.T) {
		in, w := io.Pipe()
		h := NewHuman(in, &bytes.Buffer{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := h.FindMove(ctx, gs)
		require.ErrorIs(t, err, context.Canceled)

		go func() {
			w.Write([]byte("5\n"))
			w.Close()
		}()
		house, err := h.FindMove(context.Background(), gs)
		require.NoError(t, err)
		require.Equal(t, 5, house)
	})
}
