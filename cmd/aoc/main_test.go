package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const middleWall = "S..\n" +
	"vx.\n" +
	">T.\n"

// runCLI executes the CLI and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "aoc dev\n", out)
}

func TestSolve(t *testing.T) {
	file := writeFile(t, filepath.Join(t.TempDir(), "maze.txt"), middleWall)

	code, out, errOut := runCLI(t, "solve", file)
	require.Equal(t, exitSuccess, code, errOut)
	assert.Contains(t, out, "algorithm: astar\n")
	assert.Contains(t, out, "steps: 3\n")
	assert.Contains(t, out, "cost: 3\n")

	code, out, _ = runCLI(t, "solve", file, "--algorithm", "bfs", "--diagonal")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "algorithm: bfs\n")
	assert.Contains(t, out, "cost: 2\n")

	code, out, _ = runCLI(t, "solve", file, "--render", "--color", "never")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "S..\nvx.\n>T.\n")

	code, out, _ = runCLI(t, "solve", file, "--render", "--color", "always")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "\x1b[")
}

func TestSolve_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	walled := writeFile(t, filepath.Join(dir, "walled.txt"), "Sx.\nxx.\nT..\n")
	broken := writeFile(t, filepath.Join(dir, "broken.txt"), "S?T\n")
	ok := writeFile(t, filepath.Join(dir, "ok.txt"), middleWall)

	code, _, errOut := runCLI(t, "solve", walled)
	assert.Equal(t, exitUnsolvable, code)
	assert.Contains(t, errOut, "no path found")

	code, _, _ = runCLI(t, "solve", broken)
	assert.Equal(t, exitUserError, code)

	code, _, _ = runCLI(t, "solve", filepath.Join(dir, "missing.txt"))
	assert.Equal(t, exitUserError, code)

	code, _, errOut = runCLI(t, "solve", ok, "--algorithm", "dfs")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, errOut, "unknown algorithm")

	code, _, _ = runCLI(t, "solve", ok, "--render", "--color", "sometimes")
	assert.Equal(t, exitUserError, code)

	code, _, _ = runCLI(t, "solve")
	assert.Equal(t, exitUserError, code)
}

func TestSolve_DebugLogging(t *testing.T) {
	file := writeFile(t, filepath.Join(t.TempDir(), "maze.txt"), middleWall)

	code, _, errOut := runCLI(t, "solve", file, "--log-level", "debug")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, errOut, "astar: search started")
	assert.Contains(t, errOut, "astar: goal reached")

	code, _, _ = runCLI(t, "solve", file, "--log-level", "loud")
	assert.Equal(t, exitUserError, code)
}

func TestRun(t *testing.T) {
	inputs := t.TempDir()
	writeFile(t, filepath.Join(inputs, "maze", "test.txt"), middleWall)
	writeFile(t, filepath.Join(inputs, "maze", "input.txt"), "S>T\n")

	code, out, errOut := runCLI(t, "run", "maze", "-t", "--inputs", inputs)
	require.Equal(t, exitSuccess, code, errOut)
	assert.Equal(t, "Part 1:\n3\nPart 2:\n2\n", out)

	code, out, _ = runCLI(t, "run", "maze", "--inputs", inputs)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Part 1:\n2\nPart 2:\n2\n", out)

	code, _, errOut = runCLI(t, "run", "maze", "-t", "-w", "--inputs", inputs)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, errOut, `msg="part finished" part=1`)
	assert.Contains(t, errOut, `msg="part finished" part=2`)
}

func TestRun_Errors(t *testing.T) {
	inputs := t.TempDir()

	code, _, errOut := runCLI(t, "run", "day99", "--inputs", inputs)
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, errOut, "unknown day")

	code, _, _ = runCLI(t, "run", "maze", "--inputs", inputs)
	assert.Equal(t, exitUserError, code, "input file is missing")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	inputs := filepath.Join(dir, "in")
	writeFile(t, filepath.Join(inputs, "maze", "input.txt"), middleWall)
	file := writeFile(t, filepath.Join(dir, "maze.txt"), middleWall)
	cfg := writeFile(t, filepath.Join(dir, "aoc.yaml"),
		"inputs_dir: "+inputs+"\nalgorithm: dijkstra\n")

	code, out, errOut := runCLI(t, "run", "maze", "--config", cfg)
	require.Equal(t, exitSuccess, code, errOut)
	assert.Equal(t, "Part 1:\n3\nPart 2:\n2\n", out)

	code, out, _ = runCLI(t, "solve", file, "--config", cfg)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "algorithm: dijkstra\n")

	// flags win over the file
	code, out, _ = runCLI(t, "solve", file, "--config", cfg, "--algorithm", "dijkstra-fifo")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "algorithm: dijkstra-fifo\n")

	code, _, _ = runCLI(t, "version", "--config", filepath.Join(dir, "nope.yaml"))
	assert.Equal(t, exitUserError, code, "explicit config must exist")
}

func TestConfig_Env(t *testing.T) {
	file := writeFile(t, filepath.Join(t.TempDir(), "maze.txt"), middleWall)
	t.Setenv("AOC_ALGORITHM", "bfs")

	code, out, _ := runCLI(t, "solve", file)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "algorithm: bfs\n")
}

func TestNewApp_Registry(t *testing.T) {
	a := newApp(&bytes.Buffer{})
	assert.Equal(t, []string{"maze"}, a.registry.Days())

	assert.Panics(t, func() { mustRegister(a.registry, "maze", nil) })
}
