package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathkit/maze"
	"github.com/katalvlaran/pathkit/runner"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	stderr   io.Writer
	cfg      *viper.Viper
	log      *slog.Logger
	registry *runner.Registry

	flagConfig string
}

func newApp(stderr io.Writer) *app {
	reg := runner.NewRegistry()
	mustRegister(reg, "maze", maze.Solver{})

	return &app{
		stderr:   stderr,
		log:      slog.New(slog.DiscardHandler),
		registry: reg,
	}
}

// mustRegister adds s under day and panics on a duplicate, which can only
// come from a wiring mistake in this file.
func mustRegister(reg *runner.Registry, day string, s runner.Solver) {
	if err := reg.Register(day, s); err != nil {
		panic(err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Run puzzle solvers and solve mazes",
		Long: `aoc runs registered day solvers against their puzzle input and solves
text mazes with A*, BFS or Dijkstra.

Configuration is read from aoc.yaml in the working directory or
$HOME/.config/aoc, and from AOC_* environment variables. Flags win.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "config file (default: ./aoc.yaml or ~/.config/aoc/aoc.yaml)")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().String("inputs", defaultInputsDir, "directory holding <day>/input.txt and <day>/test.txt")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads config, binds the flags of cmd over it and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := loadConfig(a.flagConfig)
	if err != nil {
		return err
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	a.cfg = v

	a.log, err = newLogger(a.stderr, v.GetString(cfgKeyLogLevel))
	return err
}
