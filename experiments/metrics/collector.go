package metrics

import (
	"kalah/game"
	"time"
)

type MoveMetric struct {
	Step      int
	Player    game.Player
	House     int
	ExtraTurn bool
	Captured  int
	Duration  time.Duration // Time the agent took to choose the move
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Outcome
	Store1         int
	Store2         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Rejected       int // Illegal moves proposed by agents
}

type Collector interface {
	Start(starting game.Player)
	AddMove(player game.Player, result game.MoveResult, elapsed time.Duration)
	AddRejection()
	Complete(final *game.GameState) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Player) {
	m.game = GameMetric{StartingPlayer: starting, StartTime: time.Now()}
	m.moves = []MoveMetric{}
}

func (m *collector) AddMove(player game.Player, result game.MoveResult, elapsed time.Duration) {
	m.moves = append(m.moves, MoveMetric{
		Step:      len(m.moves) + 1,
		Player:    player,
		House:     result.House,
		ExtraTurn: result.ExtraTurn,
		Captured:  result.Captured,
		Duration:  elapsed,
	})
}

func (m *collector) AddRejection() {
	m.game.Rejected++
}

func (m *collector) Complete(final *game.GameState) (GameMetric, []MoveMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.TotalMoves = len(m.moves)
	m.game.Winner = final.Winner()
	m.game.Store1, m.game.Store2 = final.Score()
	return m.game, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Player)                          {}
func (m *dummyCollector) AddMove(game.Player, game.MoveResult, time.Duration) {}
func (m *dummyCollector) AddRejection()                                       {}
func (m *dummyCollector) Complete(*game.GameState) (GameMetric, []MoveMetric) { return GameMetric{}, nil }
