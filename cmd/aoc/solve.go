package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathkit/core"
	"github.com/katalvlaran/pathkit/maze"
)

func newSolveCmd(a *app) *cobra.Command {
	var diagonal, render bool

	cmd := &cobra.Command{
		Use:   "solve <maze-file>",
		Short: "Find the shortest route through a text maze",
		Long: `Solve reads a maze (S start, T target, x wall, . floor) and prints the
length and cost of the shortest route from S to T.

Example:
  aoc solve maze.txt --algorithm bfs --diagonal --render`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := maze.ParseAlgorithm(a.cfg.GetString(cfgKeyAlgorithm))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read maze: %w", err)
			}
			m, err := maze.Parse(string(data))
			if err != nil {
				return err
			}

			res, err := m.Solve(alg, diagonal, core.WithLogger(a.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "algorithm: %s\n", alg)
			fmt.Fprintf(out, "steps: %d\n", res.Len())
			fmt.Fprintf(out, "cost: %d\n", res.Cost)
			fmt.Fprintf(out, "expanded: %d\n", res.Expanded)
			if render {
				paint, err := painter(out, a.cfg.GetString(cfgKeyColor))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, m.Render(res.Path, paint))
			}
			return nil
		},
	}

	cmd.Flags().String("algorithm", defaultAlgorithm, fmt.Sprintf("search engine, one of %v", maze.Algorithms))
	cmd.Flags().String("color", defaultColor, "color the rendered route: auto, always, never")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal steps")
	cmd.Flags().BoolVar(&render, "render", false, "draw the route over the maze")
	return cmd
}

// painter returns the route decorator for mode. auto colors only when w is
// a terminal.
func painter(w io.Writer, mode string) (func(string) string, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "never":
		return nil, nil
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "auto":
		if !isTerminal(w) {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("color %q: want auto, always or never", mode)
	}

	style := r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	return func(s string) string { return style.Render(s) }, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
