package naval

// Composite merges a ship board with an effect board into a new result.
//
// Per cell, in precedence order:
//   - effect marked over a ship: Hit
//   - effect marked over water: the effect marker
//   - otherwise: the main board's value
//
// Both arguments are copies, so neither caller grid can change.
func Composite(main, effect Grid) Grid {
	result := main
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			mark := effect[i][j]
			if mark == Water {
				continue
			}
			switch main[i][j] {
			case Ship:
				result[i][j] = Hit
			case Water:
				result[i][j] = mark
			}
		}
	}
	return result
}
