package naval

// Effect generators stamp a marker into every qualifying cell of an effect
// grid. Non-qualifying cells are left untouched, so callers clear the grid
// before a fresh stamp; stamping several shapes into one grid layers them
// with the last write winning. Each generator scans the whole board, and
// origins off the board simply yield fewer (or no) marked cells.

// Cone stamps ConeEffect in a wedge opening from origin toward dir.
// A cell qualifies when it lies on the dir side of the origin, its
// distance across the cone axis is at most its distance along it, and
// the distance along the axis is at most rng. At distance d the wedge is
// 2d+1 cells wide before clipping.
func Cone(g *Grid, origin Coord, rng int, dir Direction) {
	if !dir.Valid() {
		return
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			along, across := coneAxes(origin, i, j, dir)
			if along < 0 || along > rng {
				continue
			}
			if across <= along {
				g[i][j] = ConeEffect
			}
		}
	}
}

// coneAxes projects (i, j) onto the cone's primary axis (signed, positive
// on the open side) and returns the unsigned distance across it.
func coneAxes(origin Coord, i, j int, dir Direction) (along, across int) {
	switch dir {
	case North:
		return origin.Row - i, abs(j - origin.Col)
	case South:
		return i - origin.Row, abs(j - origin.Col)
	case East:
		return j - origin.Col, abs(i - origin.Row)
	case West:
		return origin.Col - j, abs(i - origin.Row)
	}
	return -1, 0
}

// Cross stamps CrossEffect along the origin's row and column, out to rng
// cells on each side.
func Cross(g *Grid, origin Coord, rng int) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			rowBand := i == origin.Row && abs(j-origin.Col) <= rng
			colBand := j == origin.Col && abs(i-origin.Row) <= rng
			if rowBand || colBand {
				g[i][j] = CrossEffect
			}
		}
	}
}

// CrossLegacy reproduces the classic demonstration's cross, whose bands
// measure against the swapped origin coordinate: the row band limits
// |col - origin.Row| and the column band limits |row - origin.Col|. The
// two agree only when origin.Row == origin.Col.
func CrossLegacy(g *Grid, origin Coord, rng int) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			rowBand := i == origin.Row && abs(j-origin.Row) <= rng
			colBand := j == origin.Col && abs(i-origin.Col) <= rng
			if rowBand || colBand {
				g[i][j] = CrossEffect
			}
		}
	}
}

// Octahedron stamps OctahedronEffect on every cell within Manhattan
// distance rng of origin, a diamond on the flat board.
func Octahedron(g *Grid, origin Coord, rng int) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if origin.Manhattan(At(i, j)) <= rng {
				g[i][j] = OctahedronEffect
			}
		}
	}
}
