// meta/meta.go
package meta

// DEFAULT_SEEDS is the number of seeds placed in every house when none is configured.
const DEFAULT_SEEDS = 3

// DEFAULT_HUMANS is the number of human players when none is configured.
const DEFAULT_HUMANS = 1

// MAX_TURNS caps the moves of a single game. Kalah always terminates well before this.
const MAX_TURNS = 1000

// GAMES_PER_SERIES is the default number of games of a computer-only series.
const GAMES_PER_SERIES = 100
