package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridString(t *testing.T) {
	g := newGrid(4, 4)
	g.set(1, 1, Floor)
	deriveWalls(g)
	deriveBottomWalls(g)

	want := "    \n" +
		"#=# \n" +
		"#.# \n" +
		"### \n"
	assert.Equal(t, want, g.String())
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := newGrid(4, 4)
	assert.Equal(t, Empty, g.At(-1, 0))
	assert.Equal(t, Empty, g.At(0, 4))
	assert.False(t, g.InBounds(4, 0))
}

func TestGridRowsIsACopy(t *testing.T) {
	g := newGrid(4, 4)
	rows := g.Rows()
	rows[2][2] = Floor
	assert.Equal(t, Empty, g.At(2, 2))
}

func TestTileJSON(t *testing.T) {
	b, err := json.Marshal([]Tile{Empty, Floor, Wall, BottomWall})
	require.NoError(t, err)
	assert.JSONEq(t, `["empty","floor","wall","bottomWall"]`, string(b))

	var tiles []Tile
	require.NoError(t, json.Unmarshal(b, &tiles))
	assert.Equal(t, []Tile{Empty, Floor, Wall, BottomWall}, tiles)

	var bad Tile
	assert.Error(t, json.Unmarshal([]byte(`"lava"`), &bad))
}
