package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		generations int
		empty       bool
		quiet       bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "advance a randomized board headlessly and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := c.newSession()
			if err != nil {
				return err
			}
			if !empty {
				sim.Randomize()
			}
			sim.SetRunning(true)
			for i := 0; i < generations; i++ {
				sim.Tick()
			}
			level.Info(c.logger).Log("msg", "run finished", "generations", sim.Generation(),
				"population", sim.Population(), "stable", sim.Stagnant())

			out := cmd.OutOrStdout()
			if !quiet {
				fmt.Fprint(out, sim.Grid().String())
			}
			fmt.Fprintf(out, "generation %d  population %d  stable %v\n", sim.Generation(), sim.Population(), sim.Stagnant())
			if hist := sim.History(); len(hist) > 1 {
				fmt.Fprintln(out, plotPopulation(hist, "population"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&generations, "generations", 100, "generations to simulate")
	cmd.Flags().BoolVar(&empty, "empty", false, "start from an empty board instead of a random one")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the final board")
	return cmd
}

func plotPopulation(hist []int, caption string) string {
	data := make([]float64, len(hist))
	for i, v := range hist {
		data[i] = float64(v)
	}
	if allEqual(hist) {
		return fmt.Sprintf("%s steady at %d", caption, hist[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func allEqual(hist []int) bool {
	for _, v := range hist[1:] {
		if v != hist[0] {
			return false
		}
	}
	return true
}
