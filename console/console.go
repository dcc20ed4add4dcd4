package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"kalah/engine"
	"kalah/game"
	"strconv"
	"strings"
	"sync"
)

// Renderer prints the board and game events as text. It implements
// engine.Observer.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Welcome prints the instructions and the opening board.
func (r *Renderer) Welcome(state *game.GameState) {
	fmt.Fprintf(r.out, "%30s\n", "Welcome to Kalah.\n")
	fmt.Fprintln(r.out, "Enter the number of the house to")
	fmt.Fprintln(r.out, "move the seeds counter-clockwise.")
	fmt.Fprintln(r.out, "Enter quit or q to stop the game.")
	fmt.Fprintln(r.out)
	r.turn(state)
}

func (r *Renderer) MoveApplied(state *game.GameState, result game.MoveResult) {
	fmt.Fprintf(r.out, "%s sowed house %d", game.OwnerOf(result.House), result.House)
	if result.Captured > 0 {
		fmt.Fprintf(r.out, " and captured %d seeds", result.Captured)
	}
	if result.ExtraTurn && state.Phase == game.AwaitingMove {
		fmt.Fprint(r.out, " and moves again")
	}
	fmt.Fprintln(r.out, ".")
	if state.Phase == game.AwaitingMove {
		r.turn(state)
	}
}

func (r *Renderer) MoveRejected(state *game.GameState, house int, err error) {
	fmt.Fprintln(r.out, "Invalid input.")
}

func (r *Renderer) GameOver(state *game.GameState) {
	fmt.Fprintf(r.out, "%8s%s\n", "", state.Winner())
	r.Board(state.Board)
}

func (r *Renderer) turn(state *game.GameState) {
	fmt.Fprintf(r.out, "%20s\n", state.CurrentPlayer)
	r.Board(state.Board)
}

// Board draws player 2's houses on top, right to left, and player 1's below.
func (r *Renderer) Board(b game.Board) {
	fmt.Fprintln(r.out, strings.Repeat("_", 40))
	fmt.Fprintln(r.out, "  '12''11''10''9' '8' '7'  House numbers")
	for h := game.Player2.HighestHouse(); h >= game.Player2.Houses()[0]; h-- {
		fmt.Fprintf(r.out, "%4d", b[h])
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%d%s%d   Stores\n", b[game.Player2.Store()], strings.Repeat(" ", 26), b[game.Player1.Store()])
	fmt.Fprintln(r.out)
	for _, h := range game.Player1.Houses() {
		fmt.Fprintf(r.out, "%4d", b[h])
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "  '0' '1' '2' '3' '4' '5'  House numbers")
	fmt.Fprintln(r.out, strings.Repeat("_", 40))
}

// Human reads house numbers typed by a person.
type Human struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan string
	err   error // read error, valid once lines is closed
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: in, out: out}
}

func (h *Human) Name() string { return "human" }

// read feeds lines from the input until it is exhausted. It runs in its own
// goroutine so a pending prompt can be abandoned when the game is cancelled.
func (h *Human) read() {
	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		h.lines <- scanner.Text()
	}
	h.err = scanner.Err()
	close(h.lines)
}

// FindMove prompts until a number is entered. Range and emptiness checks are
// left to the engine. Entering q or quit, or closing the input, returns
// engine.ErrQuit; cancelling ctx returns ctx.Err().
func (h *Human) FindMove(ctx context.Context, gs *game.GameState) (int, error) {
	h.once.Do(func() {
		h.lines = make(chan string)
		go h.read()
	})

	for {
		fmt.Fprint(h.out, ">>> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(h.out)
			return 0, ctx.Err()
		case l, ok := <-h.lines:
			if !ok {
				if h.err != nil {
					return 0, fmt.Errorf("read move: %w", h.err)
				}
				return 0, engine.ErrQuit
			}
			line = l
		}

		input := strings.TrimSpace(line)
		if input == "q" || input == "quit" {
			return 0, engine.ErrQuit
		}
		house, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(h.out, "Invalid input.")
			continue
		}
		return house, nil
	}
}
