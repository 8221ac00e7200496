package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulationCull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChanceWalkerDestroy = 0.5

	t.Run("removes at most one walker", func(t *testing.T) {
		s := newSimulation(cfg, &scriptedRandom{}, nil)
		s.walkers = []walker{
			{pos: Point{X: 1, Y: 1}},
			{pos: Point{X: 2, Y: 2}},
			{pos: Point{X: 3, Y: 3}},
		}
		s.rng = &scriptedRandom{floats: []float64{0}}

		s.cull()

		assert.Equal(t, []walker{{pos: Point{X: 2, Y: 2}}, {pos: Point{X: 3, Y: 3}}}, s.walkers)
	})

	t.Run("keeps the last walker", func(t *testing.T) {
		s := newSimulation(cfg, &scriptedRandom{}, nil)
		s.rng = &scriptedRandom{floats: []float64{0}}

		s.cull()

		assert.Len(t, s.walkers, 1)
	})

	t.Run("skips walkers whose draw misses", func(t *testing.T) {
		s := newSimulation(cfg, &scriptedRandom{}, nil)
		s.walkers = []walker{{pos: Point{X: 1, Y: 1}}, {pos: Point{X: 2, Y: 2}}}
		s.rng = &scriptedRandom{floats: []float64{0.9, 0.1}}

		s.cull()

		assert.Equal(t, []walker{{pos: Point{X: 1, Y: 1}}}, s.walkers)
	})
}

func TestSimulationSpawn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChanceWalkerSpawn = 1
	cfg.MaxWalkers = 3

	s := newSimulation(cfg, &scriptedRandom{}, nil)
	s.walkers = []walker{{pos: Point{X: 4, Y: 4}}, {pos: Point{X: 6, Y: 6}}}
	s.rng = &scriptedRandom{floats: []float64{0}, ints: []int{int(Up)}}

	s.spawn()

	assert.Len(t, s.walkers, cfg.MaxWalkers)
	assert.Equal(t, walker{pos: Point{X: 4, Y: 4}, dir: Up}, s.walkers[2])
	assert.Equal(t, 3, s.peak)
}

func TestSimulationMoveClamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 6, 6

	s := newSimulation(cfg, &scriptedRandom{}, nil)
	s.walkers = []walker{
		{pos: Point{X: 1, Y: 3}, dir: Left},
		{pos: Point{X: 4, Y: 4}, dir: Up},
		{pos: Point{X: 2, Y: 2}, dir: Right},
	}

	s.move()

	assert.Equal(t, Point{X: 1, Y: 3}, s.walkers[0].pos)
	assert.Equal(t, Point{X: 4, Y: 4}, s.walkers[1].pos)
	assert.Equal(t, Point{X: 3, Y: 2}, s.walkers[2].pos)
}

func TestCenterRoundsHalfToEven(t *testing.T) {
	assert.Equal(t, Point{X: 5, Y: 5}, center(10, 10))
	assert.Equal(t, Point{X: 6, Y: 4}, center(11, 9))
	assert.Equal(t, Point{X: 2, Y: 2}, center(4, 5))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Up ")
	assert.NoError(t, err)
	assert.Equal(t, Up, d)
	assert.Equal(t, Point{X: 0, Y: 1}, d.Delta())

	_, err = ParseDirection("north-east")
	assert.Error(t, err)
}
