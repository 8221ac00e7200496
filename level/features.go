package level

// placeExit returns the floor tile farthest from spawn. The last row and
// column are never scanned; ties keep the first tile found. If no floor is
// found the exit falls back to spawn.
func placeExit(g *Grid, spawn Point) Point {
	exit := spawn
	best := 0.0
	for x := 0; x < g.width-1; x++ {
		for y := 0; y < g.height-1; y++ {
			if g.cells[y][x] != Floor {
				continue
			}
			candidate := Point{X: x, Y: y}
			if d := spawn.Distance(candidate); d > best {
				best = d
				exit = candidate
			}
		}
	}
	return exit
}
