package level

// IterationReport describes the state after one walker iteration.
type IterationReport struct {
	Iteration  int // Zero-based iteration index
	Walkers    int // Population after the clamp step
	FloorCount int // Floor tiles after the mark step
}

// simulation carves floor into grid with a population of walkers.
type simulation struct {
	cfg     Config
	grid    *Grid
	rng     Random
	walkers []walker
	floors  int
	peak    int
	hook    func(IterationReport)
}

// newSimulation allocates the grid and seeds a single walker at its center.
func newSimulation(cfg Config, rng Random, hook func(IterationReport)) *simulation {
	seed := walker{
		pos: center(cfg.Width, cfg.Height),
		dir: RandomDirection(rng),
	}
	return &simulation{
		cfg:     cfg,
		grid:    newGrid(cfg.Width, cfg.Height),
		rng:     rng,
		walkers: []walker{seed},
		peak:    1,
		hook:    hook,
	}
}

// run iterates until the fill target is exceeded or the iteration cap is
// hit, and returns the number of iterations performed. The body always runs
// at least once.
func (s *simulation) run() int {
	iterations := 0
	for {
		s.mark()
		s.cull()
		s.redirect()
		s.spawn()
		s.move()

		if s.hook != nil {
			s.hook(IterationReport{
				Iteration:  iterations,
				Walkers:    len(s.walkers),
				FloorCount: s.floors,
			})
		}

		if s.fillRatio() > s.cfg.PercentToFill {
			return iterations + 1
		}
		iterations++
		if iterations >= s.cfg.IterationSteps {
			return iterations
		}
	}
}

func (s *simulation) mark() {
	for _, w := range s.walkers {
		if s.grid.AtPoint(w.pos) != Floor {
			s.grid.set(w.pos.X, w.pos.Y, Floor)
			s.floors++
		}
	}
}

// cull removes at most one walker per iteration and never the last one.
// The draw happens before the population check so the random sequence
// does not depend on the population size.
func (s *simulation) cull() {
	checks := len(s.walkers)
	for i := 0; i < checks; i++ {
		if s.rng.Float64() < s.cfg.ChanceWalkerDestroy && len(s.walkers) > 1 {
			s.walkers = append(s.walkers[:i], s.walkers[i+1:]...)
			return
		}
	}
}

func (s *simulation) redirect() {
	for i, w := range s.walkers {
		if s.rng.Float64() < s.cfg.ChanceWalkerChangeDir {
			s.walkers[i] = walker{pos: w.pos, dir: RandomDirection(s.rng)}
		}
	}
}

// spawn only considers walkers that existed before this step.
func (s *simulation) spawn() {
	checks := len(s.walkers)
	for i := 0; i < checks; i++ {
		if s.rng.Float64() < s.cfg.ChanceWalkerSpawn && len(s.walkers) < s.cfg.MaxWalkers {
			s.walkers = append(s.walkers, walker{
				pos: s.walkers[i].pos,
				dir: RandomDirection(s.rng),
			})
		}
	}
	s.peak = max(s.peak, len(s.walkers))
}

// move advances every walker one step and keeps it off the border.
func (s *simulation) move() {
	for i, w := range s.walkers {
		s.walkers[i] = w.step().clamp(s.cfg.Width, s.cfg.Height)
	}
}

func (s *simulation) fillRatio() float64 {
	return float64(s.floors) / float64(s.grid.Len())
}
