package experiments

import (
	"context"
	"fmt"
	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Series describes a run of computer-only games between the heuristic and an
// opponent. The heuristic alternates seats so each side starts half the games.
type Series struct {
	Name     string
	Games    int
	Seeds    int
	Opponent string // player.New name for the heuristic's opponent
	OutDir   string
	Rng      *rand.Rand
}

type Summary struct {
	Games         int
	HeuristicWins int
	OpponentWins  int
	Ties          int
	Dir           string // Where the records were written
}

// Run plays the series and writes game and move records under OutDir.
func Run(ctx context.Context, s Series) (Summary, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := Summary{}

	log.Info().Msgf("starting %s series of %d games: heuristic vs %s", s.Name, s.Games, s.Opponent)

	for i := 0; i < s.Games; i++ {
		heuristicSeat := game.Player(i % 2)
		outcome, gameMetric, moveMetrics, err := runGame(ctx, s, heuristicSeat)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		count++
		gameRecords = append(gameRecords, metrics.GameRecord{ID: count, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
		}

		summary.Games++
		switch {
		case outcome == game.Tie:
			summary.Ties++
		case (outcome == game.Player1Wins) == (heuristicSeat == game.Player1):
			summary.HeuristicWins++
		default:
			summary.OpponentWins++
		}
		log.Debug().Msgf("completed game %d of %d: %s", i+1, s.Games, outcome)
	}

	log.Info().Msgf("completed %s series: heuristic %d, %s %d, ties %d",
		s.Name, summary.HeuristicWins, s.Opponent, summary.OpponentWins, summary.Ties)

	writer, err := metrics.NewWriter(s.OutDir, s.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create series writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")
	return summary, nil
}

func runGame(ctx context.Context, s Series, heuristicSeat game.Player) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	opponent, err := player.New(s.Opponent, s.Rng)
	if err != nil {
		return game.Undecided, metrics.GameMetric{}, nil, err
	}
	var agents [2]player.Agent
	agents[heuristicSeat] = player.NewHeuristic(s.Rng)
	agents[heuristicSeat.Other()] = opponent

	e := engine.LocalEngine(s.Seeds, agents, engine.WithMetrics())
	return e.Run(ctx)
}
