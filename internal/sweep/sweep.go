// Package sweep runs many seeded sessions side by side and summarizes how
// each one evolves. Every run owns its own session; nothing is shared
// between goroutines except the result slice, written at distinct indices.
package sweep

import (
	"context"
	"runtime"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"pixlife/internal/session"
	"pixlife/pkg/life"
)

// Params describes a sweep.
type Params struct {
	Width       int
	Height      int
	Topology    life.Topology
	Generations int
	Seeds       []int64
	Workers     int
	Logger      log.Logger
}

// Result summarizes one seeded run.
type Result struct {
	Seed        int64
	Initial     int
	Final       int
	Peak        int
	Generations int
	// SettledAt is the generation at which the board first became a still
	// life or period-2 oscillator, or -1 if it never did.
	SettledAt int
	Extinct   bool
	History   []int
}

// Seeds returns n consecutive seeds starting at first. A non-positive n
// yields no seeds.
func Seeds(first int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

// Run executes one session per seed with at most p.Workers running at once.
// Results come back in seed order. Cancelling ctx stops every run between
// generations.
func Run(ctx context.Context, p Params) ([]Result, error) {
	if p.Generations < 0 {
		return nil, errors.Errorf("sweep: negative generation count %d", p.Generations)
	}
	logger := p.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(p.Seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, seed := range p.Seeds {
		eg.Go(func() error {
			res, err := runOne(ctx, p, seed)
			if err != nil {
				return errors.Wrapf(err, "sweep: seed %d", seed)
			}
			results[i] = res
			level.Debug(logger).Log("msg", "run finished", "seed", seed, "final", res.Final, "settled_at", res.SettledAt)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, p Params, seed int64) (Result, error) {
	sim, err := session.New(session.Options{
		Width:      p.Width,
		Height:     p.Height,
		Seed:       seed,
		Topology:   p.Topology,
		HistoryLen: p.Generations + 1,
	})
	if err != nil {
		return Result{}, err
	}
	sim.Randomize()
	sim.SetRunning(true)

	res := Result{Seed: seed, Initial: sim.Population(), Peak: sim.Population(), SettledAt: -1}
	for gen := 1; gen <= p.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Tick()
		pop := sim.Population()
		res.Peak = max(res.Peak, pop)
		if res.SettledAt < 0 && sim.Stagnant() {
			res.SettledAt = gen
		}
	}
	res.Final = sim.Population()
	res.Generations = sim.Generation()
	res.Extinct = res.Final == 0
	res.History = sim.History()
	return res, nil
}

// Rank orders results by final population, largest first, breaking ties by
// seed.
func Rank(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Final != out[j].Final {
			return out[i].Final > out[j].Final
		}
		return out[i].Seed < out[j].Seed
	})
	return out
}
