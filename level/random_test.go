package level

// scriptedRandom replays fixed sequences. When a sequence runs out its last
// value repeats; an empty sequence yields zero.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[min(s.fi, len(s.floats)-1)]
	s.fi++
	return v
}

func (s *scriptedRandom) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[min(s.ii, len(s.ints)-1)]
	s.ii++
	return v % n
}
