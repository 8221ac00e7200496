// Command levelgen generates a single level and prints it to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-walker/config"
	logger "github.com/beka-birhanu/vinom-walker/infrastruture/log"
	"github.com/beka-birhanu/vinom-walker/level"
)

func main() {
	def := level.DefaultConfig()
	cfg := def

	flag.IntVar(&cfg.Width, "width", def.Width, "level width in tiles")
	flag.IntVar(&cfg.Height, "height", def.Height, "level height in tiles")
	flag.Float64Var(&cfg.PercentToFill, "fill", def.PercentToFill, "floor ratio that stops the walk")
	flag.Float64Var(&cfg.ChanceWalkerChangeDir, "turn", def.ChanceWalkerChangeDir, "chance a walker picks a new direction")
	flag.Float64Var(&cfg.ChanceWalkerSpawn, "spawn", def.ChanceWalkerSpawn, "chance a walker spawns another")
	flag.Float64Var(&cfg.ChanceWalkerDestroy, "destroy", def.ChanceWalkerDestroy, "chance a walker is removed")
	flag.IntVar(&cfg.MaxWalkers, "walkers", def.MaxWalkers, "maximum walker population")
	flag.IntVar(&cfg.IterationSteps, "steps", def.IterationSteps, "iteration cap")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	asJSON := flag.Bool("json", false, "print the level as JSON")
	trace := flag.Int("trace", 0, "log walker population every n iterations (0 disables)")
	flag.Parse()

	log, err := logger.New("LEVELGEN", config.ColorBlue, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts []level.Option
	if *trace > 0 {
		every := *trace
		opts = append(opts, level.WithIterationHook(func(r level.IterationReport) {
			if r.Iteration%every == 0 {
				log.Info(fmt.Sprintf("iteration %d: walkers=%d floors=%d", r.Iteration, r.Walkers, r.FloorCount))
			}
		}))
	}

	start := time.Now()
	res, err := level.Generate(cfg, level.NewSource(*seed), opts...)
	if err != nil {
		log.Error(err.Error())
		os.Exit(2)
	}
	elapsed := time.Since(start)

	if !res.Stats.Filled {
		log.Warning(fmt.Sprintf("iteration cap reached at fill %.3f, target was %.3f", res.Stats.FillRatio, cfg.PercentToFill))
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"seed":   *seed,
			"width":  res.Grid.Width(),
			"height": res.Grid.Height(),
			"tiles":  res.Grid.Rows(),
			"spawn":  res.Spawn,
			"exit":   res.Exit,
			"stats":  res.Stats,
		}); err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	fmt.Print(draw(res))
	fmt.Printf("seed %d, generated in %v\n", *seed, elapsed)
	fmt.Printf("spawn (%d,%d)  exit (%d,%d)\n", res.Spawn.X, res.Spawn.Y, res.Exit.X, res.Exit.Y)
	fmt.Printf("iterations %d  floors %d  fill %.3f  peak walkers %d\n",
		res.Stats.Iterations, res.Stats.FloorCount, res.Stats.FillRatio, res.Stats.PeakWalkers)
}

// draw renders the grid top row first, marking spawn with S and exit with E.
func draw(res *level.Result) string {
	var sb strings.Builder
	g := res.Grid
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			p := level.Point{X: x, Y: y}
			switch p {
			case res.Exit:
				sb.WriteByte('E')
			case res.Spawn:
				sb.WriteByte('S')
			default:
				sb.WriteRune(g.At(x, y).Rune())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
