package engine

import (
	"context"
	"errors"
	"fmt"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"
	"kalah/player"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithObservers registers observers notified after every engine event.
func WithObservers(observers ...Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, observers...)
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithMaxTurns overrides the safety cap on applied moves.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine runs a single game. It owns the game state exclusively; agents and
// observers only ever see copies.
type Engine struct {
	State     *game.GameState
	Agents    [2]player.Agent // Indexed by game.Player
	observers []Observer
	metrics   metrics.Collector
	maxTurns  int
}

// LocalEngine sets up a game with seeds per house between the two agents.
func LocalEngine(seeds int, agents [2]player.Agent, options ...Option) *Engine {
	if seeds < game.MinSeeds || seeds > game.MaxSeeds {
		panic(fmt.Sprintf("seeds per house must be between %d and %d, got %d", game.MinSeeds, game.MaxSeeds, seeds))
	}
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for %s", game.Player(i)))
		}
	}

	e := &Engine{
		State:    game.NewGameState(seeds),
		Agents:   agents,
		metrics:  metrics.NewDummyCollector(),
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play validates and applies a move by the current player. A rejected move
// leaves the state untouched.
func (e *Engine) Play(house int) (game.MoveResult, error) {
	if e.State.Phase == game.Finished {
		return game.MoveResult{}, ErrGameOver
	}
	if !e.State.IsLegal(house) {
		return game.MoveResult{}, fmt.Errorf("%w: %s cannot sow house %d", ErrIllegalMove, e.State.CurrentPlayer, house)
	}

	next, result := e.State.Play(house)
	e.State = next

	for _, o := range e.observers {
		o.MoveApplied(e.State.Copy(), result)
	}
	if e.State.Phase == game.Finished {
		for _, o := range e.observers {
			o.GameOver(e.State.Copy())
		}
	}
	return result, nil
}

// Run asks the agents for moves until the game finishes, an agent quits or
// ctx is done. The outcome is Undecided unless the game finished.
func (e *Engine) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Msgf("%s (%s) is starting", e.State.CurrentPlayer, e.Agents[e.State.CurrentPlayer].Name())
	e.metrics.Start(e.State.CurrentPlayer)

	var err error
	for e.State.Phase != game.Finished {
		if err = ctx.Err(); err != nil {
			break
		}
		if e.State.Turns >= e.maxTurns {
			err = fmt.Errorf("stopped after %d turns without a winner", e.maxTurns)
			break
		}
		if err = e.step(ctx); err != nil {
			break
		}
	}

	gameMetric, moveMetrics := e.metrics.Complete(e.State)
	if errors.Is(err, ErrQuit) {
		log.Info().Msgf("%s quit after %d turns", e.State.CurrentPlayer, e.State.Turns)
		return game.Undecided, gameMetric, moveMetrics, err
	}
	if err != nil {
		log.Warn().Err(err).Msg("game stopped")
		return game.Undecided, gameMetric, moveMetrics, err
	}

	p1, p2 := e.State.Score()
	log.Info().Msgf("game over after %d turns: %d-%d, %s", e.State.Turns, p1, p2, e.State.Winner())
	return e.State.Winner(), gameMetric, moveMetrics, nil
}

// step asks the current agent for one move and applies it. Illegal choices are
// reported to observers and the same agent is asked again.
func (e *Engine) step(ctx context.Context) error {
	mover := e.State.CurrentPlayer
	agent := e.Agents[mover]

	start := time.Now()
	house, err := agent.FindMove(ctx, e.State.Copy())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	// A move chosen after cancellation is dropped.
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := e.Play(house)
	if errors.Is(err, ErrIllegalMove) {
		log.Debug().Err(err).Msgf("%s (%s) must choose again", mover, agent.Name())
		e.metrics.AddRejection()
		for _, o := range e.observers {
			o.MoveRejected(e.State.Copy(), house, err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	e.metrics.AddMove(mover, result, elapsed)
	log.Debug().
		Int("turn", e.State.Turns).
		Str("player", mover.String()).
		Int("house", house).
		Bool("extra_turn", result.ExtraTurn).
		Int("captured", result.Captured).
		Msg("move applied")
	return nil
}
