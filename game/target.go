package game

// ResolveTarget returns the index the last of seeds lands on when sowing from
// house. The store of the opponent of whoever owns house is skipped on every lap.
func ResolveTarget(house, seeds int) int {
	skip := OwnerOf(house).OpponentStore()
	pos := house
	for seeds > 0 {
		pos = (pos + 1) % BoardSize
		if pos == skip {
			continue
		}
		seeds--
	}
	return pos
}
