package config

import (
	"fmt"
	"kalah/game"
	"kalah/meta"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Config is the game setup. Only the setup collaborators read it; the rules
// engine never does.
type Config struct {
	Humans   int    // Human players: 0, 1 or 2
	Seeds    int    // Seeds per house: 3 to 6
	LogLevel string // zerolog level name
	Series   int    // Computer-only games to play and record, 0 for a single game
	Opponent string // Computer player: "heuristic" or "random"
	OutDir   string // Root directory for series records
}

type fileConfig struct {
	Humans   int    `toml:"humans"`
	Seeds    int    `toml:"seeds"`
	LogLevel string `toml:"log_level"`
	Series   int    `toml:"series"`
	Opponent string `toml:"opponent"`
	OutDir   string `toml:"out_dir"`
}

func Default() Config {
	return Config{
		Humans:   meta.DEFAULT_HUMANS,
		Seeds:    meta.DEFAULT_SEEDS,
		LogLevel: "info",
		Opponent: "heuristic",
		OutDir:   "experiments",
	}
}

// Load overlays the keys defined in the TOML file at path on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config (%s): unknown key %q", path, undecoded[0].String())
	}

	if md.IsDefined("humans") {
		cfg.Humans = raw.Humans
	}
	if md.IsDefined("seeds") {
		cfg.Seeds = raw.Seeds
	}
	if md.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if md.IsDefined("series") {
		cfg.Series = raw.Series
	}
	if md.IsDefined("opponent") {
		cfg.Opponent = strings.TrimSpace(raw.Opponent)
	}
	if md.IsDefined("out_dir") {
		cfg.OutDir = strings.TrimSpace(raw.OutDir)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Humans < 0 || c.Humans > 2 {
		return fmt.Errorf("humans must be 0, 1 or 2, got %d", c.Humans)
	}
	if c.Seeds < game.MinSeeds || c.Seeds > game.MaxSeeds {
		return fmt.Errorf("seeds must be between %d and %d, got %d", game.MinSeeds, game.MaxSeeds, c.Seeds)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.Series < 0 {
		return fmt.Errorf("series must not be negative, got %d", c.Series)
	}
	if c.Series > 0 && c.Humans > 0 {
		return fmt.Errorf("series are computer-only, got %d humans", c.Humans)
	}
	switch c.Opponent {
	case "heuristic", "random":
	default:
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}
	if c.Series > 0 && c.OutDir == "" {
		return fmt.Errorf("out_dir is required for a series")
	}
	return nil
}

// AssignSeats reports which seats are played by humans. With exactly one
// human the seat is drawn at random from rng, or the global source if nil.
func (c Config) AssignSeats(rng *rand.Rand) [2]bool {
	switch c.Humans {
	case 2:
		return [2]bool{true, true}
	case 1:
		var seats [2]bool
		if rng == nil {
			seats[rand.Intn(2)] = true
		} else {
			seats[rng.Intn(2)] = true
		}
		return seats
	default:
		return [2]bool{}
	}
}
