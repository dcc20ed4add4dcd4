package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"kalah/config"
	"kalah/console"
	"kalah/engine"
	"kalah/experiments"
	"kalah/player"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	humans := flag.Int("humans", 0, "Number of human players (0, 1 or 2)")
	seeds := flag.Int("seeds", 0, "Seeds per house (3 to 6)")
	series := flag.Int("series", 0, "Play this many computer-only games and record them")
	opponent := flag.String("opponent", "", "Computer player: heuristic or random")
	outDir := flag.String("out", "", "Directory for series records")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}

	// Flags set on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "humans":
			cfg.Humans = *humans
		case "seeds":
			cfg.Seeds = *seeds
		case "series":
			cfg.Series = *series
		case "opponent":
			cfg.Opponent = *opponent
		case "out":
			cfg.OutDir = *outDir
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Series > 0 {
		runSeries(ctx, cfg)
		return
	}
	runGame(ctx, cfg)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func runSeries(ctx context.Context, cfg config.Config) {
	summary, err := experiments.Run(ctx, experiments.Series{
		Name:     "heuristic_vs_" + cfg.Opponent,
		Games:    cfg.Series,
		Seeds:    cfg.Seeds,
		Opponent: cfg.Opponent,
		OutDir:   cfg.OutDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}
	log.Info().Msgf("records written to %s", summary.Dir)
}

func runGame(ctx context.Context, cfg config.Config) {
	var agents [2]player.Agent
	for seat, human := range cfg.AssignSeats(nil) {
		if human {
			agents[seat] = console.NewHuman(os.Stdin, os.Stdout)
			continue
		}
		agent, err := player.New(cfg.Opponent, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create computer player")
		}
		agents[seat] = agent
	}

	renderer := console.NewRenderer(os.Stdout)
	e := engine.LocalEngine(cfg.Seeds, agents, engine.WithObservers(renderer))
	renderer.Welcome(e.State.Copy())

	_, _, _, err := e.Run(ctx)
	switch {
	case err == nil, errors.Is(err, engine.ErrQuit):
	case errors.Is(err, context.Canceled):
		log.Info().Msg("interrupted")
	default:
		log.Fatal().Err(err).Msg("game failed")
	}
}
