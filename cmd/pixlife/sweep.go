package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pixlife/internal/sweep"
)

func newSweepCmd(c *cli) *cobra.Command {
	var (
		seeds       int
		generations int
		workers     int
		top         int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "run many seeds in parallel and rank them by final population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seeds < 1 {
				return errors.Errorf("sweep: --seeds must be at least 1, got %d", seeds)
			}
			if top < 0 {
				return errors.Errorf("sweep: --top must not be negative, got %d", top)
			}
			opts := c.cfg.SessionOptions(c.logger)
			results, err := sweep.Run(cmd.Context(), sweep.Params{
				Width:       opts.Width,
				Height:      opts.Height,
				Topology:    opts.Topology,
				Generations: generations,
				Seeds:       sweep.Seeds(c.cfg.Seed, seeds),
				Workers:     workers,
				Logger:      c.logger,
			})
			if err != nil {
				return err
			}
			ranked := sweep.Rank(results)
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tINITIAL\tPEAK\tFINAL\tSETTLED\tEXTINCT")
			for _, r := range ranked {
				settled := "-"
				if r.SettledAt >= 0 {
					settled = fmt.Sprint(r.SettledAt)
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%v\n", r.Seed, r.Initial, r.Peak, r.Final, settled, r.Extinct)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(ranked) > 0 && len(ranked[0].History) > 1 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, plotPopulation(ranked[0].History, fmt.Sprintf("population, seed %d", ranked[0].Seed)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&seeds, "seeds", 16, "number of consecutive seeds, starting at --seed")
	cmd.Flags().IntVar(&generations, "generations", 500, "generations per seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = one per CPU)")
	cmd.Flags().IntVar(&top, "top", 10, "rows to print (0 = all)")
	return cmd
}
