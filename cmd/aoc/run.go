package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathkit/puzzle"
	"github.com/katalvlaran/pathkit/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var test, watch bool

	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Run both parts of a day",
		Long: `Run loads <inputs>/<day>/input.txt (or test.txt with --test) and prints
the answers of both parts. A failing part is reported and does not stop
the other one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]
			s, err := a.registry.Lookup(day)
			if err != nil {
				return err
			}

			path := puzzle.Path(a.cfg.GetString(cfgKeyInputsDir), day, test)
			in, err := puzzle.Load(path, test)
			if err != nil {
				return err
			}
			a.log.Debug("input loaded", "day", day, "path", path, "lines", len(in.Lines))

			runner.Run(cmd.OutOrStdout(), s, in, runner.WithWatch(watch), runner.WithLogger(a.log))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&test, "test", "t", false, "use the test input")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "log each part's answer and duration")
	return cmd
}
