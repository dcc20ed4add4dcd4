package game

// Outcome is the result of comparing the two stores.
type Outcome int

const (
	Undecided Outcome = iota
	Player1Wins
	Player2Wins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "Player 1 is the winner."
	case Player2Wins:
		return "Player 2 is the winner."
	case Tie:
		return "The game ended in a tie."
	default:
		return "The game is not over."
	}
}

// IsTerminal reports whether all houses on either side are empty.
func IsTerminal(b Board) bool {
	return b.SideEmpty(Player1) || b.SideEmpty(Player2)
}

// Sweep moves the seeds left in each side's houses into that side's store.
func Sweep(b Board) Board {
	for _, p := range []Player{Player1, Player2} {
		b[p.Store()] += b.SideTotal(p)
		for _, h := range p.Houses() {
			b[h] = 0
		}
	}
	return b
}

// Winner compares the stores of a finished board.
func Winner(b Board) Outcome {
	s1, s2 := b[Player1.Store()], b[Player2.Store()]
	switch {
	case s1 > s2:
		return Player1Wins
	case s2 > s1:
		return Player2Wins
	default:
		return Tie
	}
}
