package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pixlife/internal/app"
	"pixlife/internal/config"
	"pixlife/internal/logging"
	"pixlife/internal/session"
	"pixlife/internal/tui"
)

// cli carries the state shared by every subcommand.
type cli struct {
	flags      *config.Config
	configPath string
	logFile    string

	cfg    *config.Config
	logger log.Logger
	closer io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{flags: config.DefaultConfig()}

	root := &cobra.Command{
		Use:          "pixlife",
		Short:        "interactive Game of Life",
		SilenceUsage: true,
		RunE:         c.runGUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closer != nil {
				return c.closer.Close()
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file path (yaml)")
	pf.StringVar(&c.logFile, "log-file", "", "write logs to this file instead of stderr")
	c.flags.Bind(pf)

	root.AddCommand(
		&cobra.Command{
			Use:   "gui",
			Short: "open the simulation in a window (needs -tags ebiten)",
			Args:  cobra.NoArgs,
			RunE:  c.runGUI,
		},
		&cobra.Command{
			Use:   "tui",
			Short: "run the simulation in the terminal",
			Args:  cobra.NoArgs,
			RunE:  c.runTUI,
		},
		newRunCmd(c),
		newSweepCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(c.configPath, cmd.Flags(), c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	var w io.Writer = os.Stderr
	switch {
	case c.logFile != "":
		f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", c.logFile)
		}
		w, c.closer = f, f
	case cmd.Name() == "tui":
		// stderr would draw over the alternate screen
		w = io.Discard
	}
	c.logger = logging.New(w, cfg.LogLevel)
	level.Debug(c.logger).Log("msg", "config resolved", "width", cfg.Width, "height", cfg.Height,
		"topology", cfg.Topology, "seed", cfg.Seed)
	return nil
}

func (c *cli) newSession() (*session.Session, error) {
	sim, err := session.New(c.cfg.SessionOptions(c.logger))
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	return sim, nil
}

func (c *cli) runGUI(cmd *cobra.Command, args []string) error {
	sim, err := c.newSession()
	if err != nil {
		return err
	}
	level.Info(c.logger).Log("msg", "starting window", "width", sim.Width(), "height", sim.Height(), "scale", c.cfg.Scale)
	return app.Run(sim, c.cfg, c.logger)
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	sim, err := c.newSession()
	if err != nil {
		return err
	}
	level.Info(c.logger).Log("msg", "starting terminal")
	return tui.Run(sim, c.cfg, c.logger)
}
