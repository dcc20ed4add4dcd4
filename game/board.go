package game

import "fmt"

const (
	BoardSize     = 14
	HousesPerSide = 6
	MinSeeds      = 3
	MaxSeeds      = 6
)

// Player identifies one of the two sides of the board.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p)+1)
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// firstHouse is the lowest house index on p's side
func (p Player) firstHouse() int {
	return int(p) * (HousesPerSide + 1)
}

// Houses returns the six house indices owned by p in ascending order.
func (p Player) Houses() []int {
	houses := make([]int, HousesPerSide)
	for i := range houses {
		houses[i] = p.firstHouse() + i
	}
	return houses
}

// HighestHouse is p's last house before its store.
func (p Player) HighestHouse() int {
	return p.firstHouse() + HousesPerSide - 1
}

func (p Player) Store() int {
	return p.firstHouse() + HousesPerSide
}

// OpponentStore is the store skipped while p sows.
func (p Player) OpponentStore() int {
	return p.Other().Store()
}

// OwnsHouse reports whether index is one of p's houses (stores excluded).
func (p Player) OwnsHouse(index int) bool {
	return index >= p.firstHouse() && index <= p.HighestHouse()
}

// OwnerOf returns the player whose half of the board contains index.
// Each half includes its owner's store.
func OwnerOf(index int) Player {
	if index <= Player1.Store() {
		return Player1
	}
	return Player2
}

// IsStore reports whether index is one of the two stores.
func IsStore(index int) bool {
	return index == Player1.Store() || index == Player2.Store()
}

// Opposite returns the house facing house across the board.
// Stores have no opposite.
func Opposite(house int) int {
	if house < 0 || house >= BoardSize || IsStore(house) {
		panic(fmt.Sprintf("no opposite house for index %d", house))
	}
	return 2*HousesPerSide - house
}

// Board holds the seeds of every house and store, indexed counter-clockwise
// from Player 1's first house. It is a value: copies never alias.
type Board [BoardSize]int

// NewBoard fills every house with seeds and leaves both stores empty.
func NewBoard(seeds int) Board {
	var b Board
	for _, p := range []Player{Player1, Player2} {
		for _, h := range p.Houses() {
			b[h] = seeds
		}
	}
	return b
}

// Total counts every seed on the board, stores included.
func (b Board) Total() int {
	total := 0
	for _, seeds := range b {
		total += seeds
	}
	return total
}

// SideTotal counts the seeds in p's houses, store excluded.
func (b Board) SideTotal(p Player) int {
	total := 0
	for _, h := range p.Houses() {
		total += b[h]
	}
	return total
}

func (b Board) SideEmpty(p Player) bool {
	return b.SideTotal(p) == 0
}
