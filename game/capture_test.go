package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMayCapture(t *testing.T) {
	var full Board
	for i := range full {
		full[i] = 4
	}

	t.Run("never on a store", func(t *testing.T) {
		for _, p := range []Player{Player1, Player2} {
			require.False(t, MayCapture(full, p, 6))
			require.False(t, MayCapture(full, p, 13))
		}
	})

	t.Run("never in the opponent's houses", func(t *testing.T) {
		for _, h := range Player2.Houses() {
			require.False(t, MayCapture(full, Player1, h))
		}
		for _, h := range Player1.Houses() {
			require.False(t, MayCapture(full, Player2, h))
		}
	})

	t.Run("own house with seeds opposite", func(t *testing.T) {
		require.True(t, MayCapture(full, Player1, 2))
		require.True(t, MayCapture(full, Player2, 9))
	})

	t.Run("own house with nothing opposite", func(t *testing.T) {
		b := full
		b[10] = 0
		require.False(t, MayCapture(b, Player1, 2))
	})
}

func TestApplyCapture(t *testing.T) {
	var b Board
	b[9] = 1
	b[3] = 5
	b[13] = 2

	got, captured := ApplyCapture(b, Player2, 9)

	require.Equal(t, 6, captured)
	require.Equal(t, 8, got[13])
	require.Zero(t, got[9])
	require.Zero(t, got[3])
	require.Equal(t, b.Total(), got.Total())

	t.Run("panics when capture is not allowed", func(t *testing.T) {
		require.Panics(t, func() { ApplyCapture(b, Player1, 9) })
	})
}
