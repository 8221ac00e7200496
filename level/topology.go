package level

var neighborhood = [...]Point{
	{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0},
	{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1},
}

// deriveWalls surrounds every floor tile with walls on all eight sides.
// Floor never sits on the border, so every neighbor read is in bounds.
func deriveWalls(g *Grid) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[y][x] != Floor {
				continue
			}
			for _, d := range neighborhood {
				nx, ny := x+d.X, y+d.Y
				if g.cells[ny][nx] == Empty {
					g.cells[ny][nx] = Wall
				}
			}
		}
	}
}

// deriveBottomWalls turns walls that sit directly above a floor tile into
// bottom walls.
func deriveBottomWalls(g *Grid) {
	for x := 0; x < g.width; x++ {
		for y := 1; y < g.height; y++ {
			if g.cells[y][x] == Wall && g.cells[y-1][x] == Floor {
				g.cells[y][x] = BottomWall
			}
		}
	}
}
